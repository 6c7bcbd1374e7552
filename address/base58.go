package address

import (
	"github.com/btcsuite/btcutil/base58"
	"github.com/sigurn/crc16"
	"github.com/wagleanuj/mochimo-wots/mochierr"
)

// crc16Table is the CRC-16/XMODEM table the reference tooling uses for
// the base58 tag checksum (see AddrTagToBase58 in tool-4/main.go and
// AddrToBase58 in wallet-tool/main.go).
var crc16Table = crc16.MakeTable(crc16.CRC16_XMODEM)

// AddrTagToBase58 encodes a 20-byte address tag as base58(tag ‖
// crc_lo ‖ crc_hi), where crc is the CRC-16/XMODEM checksum of tag.
func AddrTagToBase58(tag []byte) (string, error) {
	if len(tag) != V3TagLen {
		return "", mochierr.NewInvalidLength("address tag", V3TagLen, len(tag))
	}

	payload := make([]byte, V3TagLen+2)
	copy(payload, tag)

	crc := crc16.Checksum(tag, crc16Table)
	payload[V3TagLen] = byte(crc)
	payload[V3TagLen+1] = byte(crc >> 8)

	return base58.Encode(payload), nil
}

// Base58ToAddrTag decodes a base58 tag string, validating that it
// decodes to exactly 22 bytes and that its trailing little-endian CRC-16
// matches the checksum recomputed over the first 20 bytes.
func Base58ToAddrTag(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) != V3TagLen+2 {
		return nil, mochierr.NewInvalidBase58("decoded length must be 22 bytes")
	}

	tag := decoded[:V3TagLen]
	stored := uint16(decoded[V3TagLen]) | uint16(decoded[V3TagLen+1])<<8
	actual := crc16.Checksum(tag, crc16Table)
	if stored != actual {
		return nil, &mochierr.ChecksumMismatch{Expected: actual, Got: stored}
	}

	out := make([]byte, V3TagLen)
	copy(out, tag)
	return out, nil
}

// ValidateBase58Tag reports whether s is a well-formed base58 tag: valid
// base58, decoding to 22 bytes, with a matching CRC-16 checksum.
func ValidateBase58Tag(s string) bool {
	_, err := Base58ToAddrTag(s)
	return err == nil
}
