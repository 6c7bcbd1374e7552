// Command mcmaddr converts a hex-encoded WOTS+ public key (or a 2208-byte
// wallet address, or an existing 40-byte v3 address) into its 40-byte v3
// address form. Grounded on tool-1/main.go's -wots flag and
// hex-in/hex-out shape, retargeted at this module's address package
// instead of go_mcminterface.WotsAddressFromHex.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/wagleanuj/mochimo-wots/address"
)

func main() {
	in := flag.String("in", "", "hex-encoded WOTS+ public key (2144 bytes), wallet address (2208 bytes), or v3 address (40 or 48 bytes)")
	amount := flag.Uint64("amount", 0, "amount to attach, producing the 48-byte amount-bearing form")
	flag.Parse()

	if *in == "" {
		fmt.Println("Error: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	raw, err := hex.DecodeString(*in)
	if err != nil {
		fmt.Println("Error: invalid hex:", err)
		os.Exit(1)
	}

	var pk []byte
	switch len(raw) {
	case address.WotsSigBytes:
		pk = raw
	case address.AddressLen:
		var splitErr error
		pk, _, _, splitErr = address.SplitWalletAddress(raw)
		if splitErr != nil {
			fmt.Println("Error:", splitErr)
			os.Exit(1)
		}
	default:
		tag, hash, decodedAmount := address.V3AddressFromBytes(raw)
		out := decodedAmount
		if *amount != 0 {
			out = *amount
		}
		if out != 0 {
			full := address.WithAmount([40]byte(appendTagHash(tag, hash)), out)
			fmt.Println(hex.EncodeToString(full[:]))
			return
		}
		fmt.Printf("%x%x\n", tag, hash)
		return
	}

	addr40 := address.AddrFromWots(pk)
	if *amount != 0 {
		full := address.WithAmount(addr40, *amount)
		fmt.Println(hex.EncodeToString(full[:]))
		return
	}
	fmt.Println(hex.EncodeToString(addr40[:]))
}

func appendTagHash(tag, hash [20]byte) []byte {
	out := make([]byte, 0, 40)
	out = append(out, tag[:]...)
	out = append(out, hash[:]...)
	return out
}
