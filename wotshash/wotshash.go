package wotshash

import "github.com/wagleanuj/mochimo-wots/hashadapter"

// Padding constants: the final byte of a 32-byte left-pad distinguishing
// the F hash from the PRF.
const (
	PaddingF   = 0
	PaddingPRF = 3
)

// pad32 returns a 32-byte buffer that is all zero except for its last
// byte, set to v. This mirrors Mochimo's toByte(v, 32) / ullToBytes(32, v)
// helper seen throughout tool-2/tool-3's wots.go.
func pad32(v byte) [32]byte {
	var p [32]byte
	p[31] = v
	return p
}

// PRF computes SHA-256(pad32(PRF) || key || input) and writes the 32-byte
// digest into out[outOff:outOff+32].
func PRF(out []byte, outOff int, input, key [32]byte) {
	var buf [96]byte
	pad := pad32(PaddingPRF)
	copy(buf[0:32], pad[:])
	copy(buf[32:64], key[:])
	copy(buf[64:96], input[:])

	digest := hashadapter.Sum256(buf[:])
	copy(out[outOff:outOff+32], digest[:])
}

// ThashF performs one F-chain step: out[outOff:outOff+32] =
// F(in[inOff:inOff+32]) under pubSeed and addr. addr's key/mask field is
// mutated twice (0 then 1) as a side effect.
func ThashF(out []byte, outOff int, in []byte, inOff int, pubSeed [32]byte, addr *Address) {
	addr.SetKeyAndMask(0)
	a0 := addr.ToBytes()
	var key [32]byte
	PRF(key[:], 0, a0, pubSeed)

	addr.SetKeyAndMask(1)
	a1 := addr.ToBytes()
	var mask [32]byte
	PRF(mask[:], 0, a1, pubSeed)

	var buf [96]byte
	pad := pad32(PaddingF)
	copy(buf[0:32], pad[:])
	copy(buf[32:64], key[:])
	for i := 0; i < 32; i++ {
		buf[64+i] = in[inOff+i] ^ mask[i]
	}

	digest := hashadapter.Sum256(buf[:])
	copy(out[outOff:outOff+32], digest[:])
}
