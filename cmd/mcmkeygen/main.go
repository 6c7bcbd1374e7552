// Command mcmkeygen generates one or more Mochimo wallets from random
// seeds and prints them as JSON. Grounded on tool-2/main.go's account
// generation loop and its {"accounts":[...]} output envelope, retargeted
// at this module's own wallet package instead of WOTS-Go.
package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/wagleanuj/mochimo-wots/wallet"
)

type account struct {
	Tag       string `json:"tag"`
	PublicKey string `json:"publicKey"`
	Secret    string `json:"secret"`
}

type output struct {
	Accounts []account `json:"accounts"`
}

func generateAccount(n int) (*account, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("generating random seed for account %d: %w", n, err)
	}

	w, err := wallet.Create(fmt.Sprintf("account-%d", n), seed, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating wallet for account %d: %w", n, err)
	}

	pkHex, err := w.PublicKeyHex()
	if err != nil {
		return nil, fmt.Errorf("reading public key for account %d: %w", n, err)
	}

	return &account{
		Tag:       hex.EncodeToString(w.V3Tag()),
		PublicKey: pkHex,
		Secret:    hex.EncodeToString(seed),
	}, nil
}

func main() {
	numAccounts := flag.Uint("n", 1, "number of wallets to generate")
	flag.Parse()

	out := output{Accounts: make([]account, 0, *numAccounts)}
	for i := uint(0); i < *numAccounts; i++ {
		acc, err := generateAccount(int(i))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		out.Accounts = append(out.Accounts, *acc)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding JSON:", err)
		os.Exit(1)
	}
}
