package libdiff

// Reverse returns the changes which undo cs. Paths of removals and
// additions within sequences keep addressing the side they were computed
// on.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Added:
			c.Op = Removed
		case Removed:
			c.Op = Added
		case Changed:
			c.Text = DiffString(c.From.Text(), c.To.Text())
		}
		res[i] = c
	}
	return res
}
