package emit

// Classify runs block against input the way the rendered C code would run
// against a null-terminated copy of input. It returns the payload of the
// matched keyword, or false when control would fall through to the
// identifier fallback.
func Classify(block Block, input string) (string, bool) {
	return run(block, input)
}

// at returns the character at pos of the null-terminated input.
func at(input string, pos int) byte {
	if pos < len(input) {
		return input[pos]
	}
	return 0
}

func run(block Block, input string) (string, bool) {
	for _, s := range block {
		if payload, ok := exec(s, input); ok {
			return payload, true
		}
	}
	return "", false
}

func exec(s Stmt, input string) (string, bool) {
	switch s := s.(type) {
	case Switch:
		c := at(input, s.Pos)
		for _, arm := range s.Cases {
			if arm.Char == c {
				// break leaves the switch when the arm does not return
				return run(arm.Body, input)
			}
		}
		if c == 0 && s.Terminal != nil {
			return s.Terminal.Payload, true
		}
	case Guard:
		if at(input, s.Pos) == s.Char {
			return run(s.Body, input)
		}
	case Accept:
		if at(input, s.Pos) == 0 {
			return s.Payload, true
		}
	case Compare:
		if input == s.Word {
			return s.Payload, true
		}
	case Return:
		return s.Payload, true
	}
	return "", false
}
