package sat

// binWatch is a binary clause attached to the watch list of one of its two
// literals. Binary clauses are represented inline here (the other literal
// plus the clause's key) so that BCP's binary fast path never has to
// dereference the clause itself.
type binWatch struct {
	other Literal
	key   ClauseKey
}

// longWatch is a long (>=3 literal) clause attached to the watch list of
// one of its two watched literals. guard caches the clause's other watched
// literal: if it is currently true, the clause need not be examined at all,
// which is the single biggest win in practice since it avoids touching the
// clause's literal slice for most propagations. Grounded on the teacher's
// watcher{clause, guard}.
type longWatch struct {
	key   ClauseKey
	guard Literal
}

func (s *Solver) watchBinary(trigger, other Literal, key ClauseKey) {
	s.watchersBinary[trigger] = append(s.watchersBinary[trigger], binWatch{other: other, key: key})
}

func (s *Solver) watchLong(key ClauseKey, trigger, guard Literal) {
	s.watchersLong[trigger] = append(s.watchersLong[trigger], longWatch{key: key, guard: guard})
}

// unwatchLong removes the (single) long-clause watch entry for key from
// literal trigger's list.
func (s *Solver) unwatchLong(key ClauseKey, trigger Literal) {
	list := s.watchersLong[trigger]
	j := 0
	for i := range list {
		if list[i].key != key {
			list[j] = list[i]
			j++
		}
	}
	s.watchersLong[trigger] = list[:j]
}

func (s *Solver) unwatchBinary(key ClauseKey, trigger Literal) {
	list := s.watchersBinary[trigger]
	j := 0
	for i := range list {
		if list[i].key != key {
			list[j] = list[i]
			j++
		}
	}
	s.watchersBinary[trigger] = list[:j]
}
