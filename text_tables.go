package openstep

// The tables below are produced by internal/cmd/tabler.

// characterSet is a bitmap over the first 256 code points.
// Low bits represent lower characters, and each uint64 represents 64 characters.
type characterSet [4]uint64

func (s *characterSet) Contains(ch byte) bool {
	return s[ch/64]&(1<<(ch%64)) > 0
}

// Padding between tokens, not counting comments.
var whitespace = characterSet{
	0x0000000100002600,
	0x0000000000000000,
	0x0000000000000000,
	0x0000000000000000,
}

// Characters that end an unquoted dictionary key.
var keyTerminators = characterSet{
	0x0800000100002600,
	0x0000000000000000,
	0x0000000000000000,
	0x0000000000000000,
}

// Characters that end an unquoted literal. Both container terminators are present since
// a bare literal may appear in either a dictionary or an array.
var literalTerminators = characterSet{
	0x0800120100002600,
	0x2000000000000000,
	0x0000000000000000,
	0x0000000000000000,
}
