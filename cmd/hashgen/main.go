// Command hashgen derives the APP_PASSWORD_HASH / PASSWORD_SALT pair for the
// server environment from a chosen password.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/giladbarnea/assetvista-core/internal/security"
)

func main() {
	salt := flag.String("salt", "", "salt to use; a random 16-byte salt is generated when empty")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: hashgen [-salt SALT] <password>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	password := flag.Arg(0)

	if *salt == "" {
		b := make([]byte, 16)
		if _, err := rand.Read(b); err != nil {
			log.Fatalf("generate salt: %v", err)
		}
		*salt = hex.EncodeToString(b)
	}

	fmt.Printf("APP_PASSWORD_HASH=%s\n", security.HashPassword(password, *salt))
	fmt.Printf("PASSWORD_SALT=%s\n", *salt)
}
