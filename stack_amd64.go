package greenrt

// switch_amd64.s spills five callee-saved registers (BP, R12-R15) into a
// 40-byte region, then a sixth word holds the return address restored by
// RET — the frame primeTaskStack must reproduce is those five registers
// plus that one extra word.
const (
	primeFrameSize = 48 // 6 words: 5 callee-saved registers + return address
	primeRetOffset = 40 // the return-address word, 5*8 bytes in
)
