package server

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

func newSessionID() string {
	return uuid.NewString()
}

// newRNG seeds a per-session generator from crypto/rand.
func newRNG() *rand.Rand {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1))
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
}
