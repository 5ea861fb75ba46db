// Command adminhash prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
//
//	adminhash -cost 12 'my password'
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/iliyamo/dinosaur-museum/internal/utils"
)

func main() {
	cost := flag.Int("cost", 12, "bcrypt cost factor")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: adminhash [-cost n] <password>")
		os.Exit(2)
	}
	hash, err := utils.HashPassword(flag.Arg(0), *cost)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}
