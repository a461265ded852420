package sat

// unitRecord stores a unit clause's literal and provenance. Units never
// need watches (they are enqueued once, immediately, at level 0) so they
// are kept out of the binary/long stores entirely.
type unitRecord struct {
	literal Literal
	source  ClauseSource
	deleted bool
	tok     token
}

// ClauseDatabase is the arena that owns every clause in a solve. Clauses
// are addressed by ClauseKey; watch lists and the trail hold keys, never
// pointers, so the database remains the single owner (the "arena + stable
// keys" design note).
type ClauseDatabase struct {
	units    []unitRecord
	binaries []*Clause
	long     []*Clause
	longFree []int
}

func newClauseDatabase() *ClauseDatabase {
	return &ClauseDatabase{}
}

func (db *ClauseDatabase) appendUnit(lit Literal, source ClauseSource) ClauseKey {
	kind := OriginalUnit
	if source == SourceResolution {
		kind = AdditionUnit
	}
	idx := len(db.units)
	db.units = append(db.units, unitRecord{literal: lit, source: source})
	return ClauseKey{kind: kind, index: idx}
}

func (db *ClauseDatabase) appendBinary(c *Clause) ClauseKey {
	idx := len(db.binaries)
	db.binaries = append(db.binaries, c)
	return ClauseKey{kind: Binary, index: idx, tok: c.tok}
}

func (db *ClauseDatabase) appendLong(c *Clause, learnt bool) ClauseKey {
	kind := Original
	if learnt {
		kind = Addition
	}
	if n := len(db.longFree); n > 0 {
		idx := db.longFree[n-1]
		db.longFree = db.longFree[:n-1]
		c.tok = db.long[idx].tok
		db.long[idx] = c
		return ClauseKey{kind: kind, index: idx, tok: c.tok}
	}
	idx := len(db.long)
	db.long = append(db.long, c)
	return ClauseKey{kind: kind, index: idx, tok: c.tok}
}

// Get returns the clause for key, or ok=false if key is stale (deleted, or
// recycled under a different token) or does not address a binary/long
// clause.
func (db *ClauseDatabase) Get(key ClauseKey) (*Clause, bool) {
	switch key.kind {
	case Binary:
		if key.index < 0 || key.index >= len(db.binaries) {
			return nil, false
		}
		c := db.binaries[key.index]
		if c == nil || c.deleted || c.tok != key.tok {
			return nil, false
		}
		return c, true
	case Original, Addition:
		if key.index < 0 || key.index >= len(db.long) {
			return nil, false
		}
		c := db.long[key.index]
		if c == nil || c.deleted || c.tok != key.tok {
			return nil, false
		}
		return c, true
	default:
		return nil, false
	}
}

// GetUnit returns the literal for a unit key, or ok=false if stale.
func (db *ClauseDatabase) GetUnit(key ClauseKey) (Literal, bool) {
	if key.kind != OriginalUnit && key.kind != AdditionUnit {
		return 0, false
	}
	if key.index < 0 || key.index >= len(db.units) {
		return 0, false
	}
	u := db.units[key.index]
	if u.deleted || u.tok != key.tok {
		return 0, false
	}
	return u.literal, true
}

// delete logically removes the clause at key. Addition/AdditionUnit slots
// are recycled (their token is bumped so any outstanding key for the slot
// becomes stale); Original/OriginalUnit/Binary slots are simply marked
// dead, since originals are never re-inserted mid-solve.
func (db *ClauseDatabase) delete(key ClauseKey) {
	switch key.kind {
	case Binary:
		c := db.binaries[key.index]
		c.deleted = true
		c.literals = nil
	case Original, Addition:
		c := db.long[key.index]
		c.deleted = true
		releaseLiterals(c.literals)
		c.literals = nil
		if key.kind == Addition {
			if retoked, err := key.retoken(); err == nil {
				c.tok = retoked.tok
				db.longFree = append(db.longFree, key.index)
			}
			// Token space exhausted for this slot: leave it permanently dead
			// rather than reissue a key that could collide with a stale one.
		}
	case OriginalUnit, AdditionUnit:
		db.units[key.index].deleted = true
		if key.kind == AdditionUnit {
			if retoked, err := key.retoken(); err == nil {
				db.units[key.index].tok = retoked.tok
			}
		}
	}
}

// promoteToBinary moves a long clause whose effective length has collapsed
// to two literals (Clause.simplify dropped the rest at the root level) out
// of the long store and into the binary store under a freshly issued key,
// per spec 4.1. Unlike delete, the clause's literals are carried over
// intact rather than released back to the pool. Addition slots are
// recycled exactly as delete does; Original slots are vacated but never
// reused, since originals are never re-inserted mid-solve.
func (db *ClauseDatabase) promoteToBinary(key ClauseKey) ClauseKey {
	c := db.long[key.index]
	db.long[key.index] = nil
	if key.kind == Addition {
		if retoked, err := key.retoken(); err == nil {
			db.long[key.index] = &Clause{deleted: true, tok: retoked.tok}
			db.longFree = append(db.longFree, key.index)
		}
		// Token space exhausted for this slot: leave it permanently dead
		// rather than reissue a key that could collide with a stale one.
	}

	c.deleted = false
	c.prevPos = 0
	c.tok = 0
	return db.appendBinary(c)
}

// iterateLong returns the keys of every live Original/Addition clause.
func (db *ClauseDatabase) iterateLong() []ClauseKey {
	keys := make([]ClauseKey, 0, len(db.long))
	for i, c := range db.long {
		if c == nil || c.deleted {
			continue
		}
		kind := Original
		if c.source == SourceResolution {
			kind = Addition
		}
		keys = append(keys, ClauseKey{kind: kind, index: i, tok: c.tok})
	}
	return keys
}

// iterateLearntLong returns the keys of every live learnt (Addition) long
// clause, which is what the reduction scheduler operates on.
func (db *ClauseDatabase) iterateLearntLong() []ClauseKey {
	keys := make([]ClauseKey, 0, len(db.long))
	for i, c := range db.long {
		if c == nil || c.deleted || c.source != SourceResolution {
			continue
		}
		keys = append(keys, ClauseKey{kind: Addition, index: i, tok: c.tok})
	}
	return keys
}

// iterateBinary returns the keys of every live binary clause.
func (db *ClauseDatabase) iterateBinary() []ClauseKey {
	keys := make([]ClauseKey, 0, len(db.binaries))
	for i, c := range db.binaries {
		if c == nil || c.deleted {
			continue
		}
		keys = append(keys, ClauseKey{kind: Binary, index: i, tok: c.tok})
	}
	return keys
}

// iterateUnits returns the keys of every live unit clause.
func (db *ClauseDatabase) iterateUnits() []ClauseKey {
	keys := make([]ClauseKey, 0, len(db.units))
	for i, u := range db.units {
		if u.deleted {
			continue
		}
		kind := OriginalUnit
		if u.source == SourceResolution {
			kind = AdditionUnit
		}
		keys = append(keys, ClauseKey{kind: kind, index: i, tok: u.tok})
	}
	return keys
}
