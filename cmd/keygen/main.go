// Command keygen writes an RSA key pair for the encrypted payload envelope.
// Run it once per tier; the server keeps its private key and hands the public
// key to the frontend, and the other way round.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"github.com/sbilibin2017/gw-expense-note/internal/payload"
)

func main() {
	dir, tier, bits := parseFlags()

	files := keyFiles(dir, tier)
	if err := payload.GenerateKeyPair(files, bits); err != nil {
		log.Fatalf("failed to generate key pair: %v", err)
	}
	fmt.Printf("Wrote %s and %s\n", files.Private, files.Public)
}

// parseFlags parses command-line flags and returns the output directory, tier name and key size.
func parseFlags() (string, string, int) {
	dir := flag.String("o", "keys", "Output directory")
	tier := flag.String("tier", "server", "Key pair owner, used as the file name prefix")
	bits := flag.Int("bits", 2048, "RSA key size in bits")
	flag.Parse()
	return *dir, *tier, *bits
}

func keyFiles(dir, tier string) payload.KeyPairFiles {
	return payload.KeyPairFiles{
		Private: filepath.Join(dir, tier+"_private.pem"),
		Public:  filepath.Join(dir, tier+"_public.pem"),
	}
}
