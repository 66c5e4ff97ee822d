package greenrt

// switch_arm64.s spills twelve callee-saved registers (R19-R28, R29, R30)
// into a 96-byte region. Unlike amd64, the link register R30 doubles as the
// return address RET consumes, so there is no separate return-address word
// — the last register slot (R30's, at offset 88) is what primeTaskStack
// must set to the trampoline.
const (
	primeFrameSize = 96 // 12 words: R19-R28, R29, R30
	primeRetOffset = 88 // the R30 slot, 11*8 bytes in
)
