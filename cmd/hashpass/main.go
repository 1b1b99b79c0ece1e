// Command hashpass prints bcrypt hashes for seeding users directly into the
// database. Passwords are read one per line from stdin.
//
//	echo 's3cretpass' | go run ./cmd/hashpass
package main

import (
	"bufio"
	"fmt"
	"os"

	"go-jobboard-backend/config"
	"go-jobboard-backend/pkg/auth"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		pass := scanner.Text()
		if pass == "" {
			continue
		}
		hash, err := hasher.Hash(pass)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		fmt.Println(hash)
	}
}
