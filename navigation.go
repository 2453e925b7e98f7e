package main

// pegIndexForKey maps digit keys to pegs: '1'..'9' select pegs 0..8 and '0'
// selects peg 9. Keys outside that set, or beyond the number of pegs, are
// not peg keys.
func pegIndexForKey(key string, pegs int) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return -1, false
	}
	idx := 9
	if key[0] != '0' {
		idx = int(key[0] - '1')
	}
	if idx < 0 || idx >= pegs {
		return -1, false
	}
	return idx, true
}
