// Command mcmtag converts a 20-byte Mochimo address tag between its hex
// and base58+CRC16 encodings. Grounded on tool-4/main.go's -base58/-hex
// flag pair, retargeted at this module's address package instead of the
// tool's locally duplicated base58/CRC helpers.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wagleanuj/mochimo-wots/address"
)

func main() {
	base58Tag := flag.String("base58", "", "base58 tag to convert to hex")
	hexTag := flag.String("hex", "", "hex tag (40 characters) to convert to base58")
	flag.Parse()

	if (*base58Tag == "") == (*hexTag == "") {
		fmt.Println("Error: provide exactly one of -base58 or -hex")
		flag.Usage()
		os.Exit(1)
	}

	if *base58Tag != "" {
		if !address.ValidateBase58Tag(*base58Tag) {
			fmt.Println("Error: invalid base58 tag (wrong length or bad checksum)")
			os.Exit(1)
		}
		tag, err := address.Base58ToAddrTag(*base58Tag)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Println(hex.EncodeToString(tag))
		return
	}

	trimmed := strings.TrimPrefix(*hexTag, "0x")
	if len(trimmed) != address.V3TagLen*2 {
		fmt.Printf("Error: hex tag must be %d characters, got %d\n", address.V3TagLen*2, len(trimmed))
		os.Exit(1)
	}
	tag, err := hex.DecodeString(trimmed)
	if err != nil {
		fmt.Println("Error: invalid hex:", err)
		os.Exit(1)
	}
	encoded, err := address.AddrTagToBase58(tag)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println(encoded)
}
