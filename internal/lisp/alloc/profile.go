package alloc

import "fmt"

// Profile reports the size and free-list depth of both arenas at a point in
// time, letting the host observe collection pressure (spec.md's gc-profile
// builtin prints this; tests assert on it directly instead of scraping
// stdout, matching the teacher's PoolStats/GetPoolStats convention).
type Profile struct {
	ValuesSize int
	ValuesFree int
	EnvsSize   int
	EnvsFree   int
}

// String renders the profile the way gc-profile prints it to the host.
func (p Profile) String() string {
	return fmt.Sprintf(
		"values: %d live, %d free (size %d) | envs: %d live, %d free (size %d)",
		p.ValuesSize-p.ValuesFree, p.ValuesFree, p.ValuesSize,
		p.EnvsSize-p.EnvsFree, p.EnvsFree, p.EnvsSize,
	)
}
