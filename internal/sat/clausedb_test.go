package sat

import "testing"

func TestClauseDatabase_BinaryRoundTrip(t *testing.T) {
	db := newClauseDatabase()
	c := newBinaryClause(PositiveLiteral(1), NegativeLiteral(2), SourceOriginal)
	key := db.appendBinary(c)

	got, ok := db.Get(key)
	if !ok || got != c {
		t.Fatalf("Get(%v) = %v, %v; want %v, true", key, got, ok, c)
	}

	db.delete(key)
	if _, ok := db.Get(key); ok {
		t.Errorf("Get(%v) after delete: ok = true, want false", key)
	}
}

func TestClauseDatabase_LongSlotRecycling(t *testing.T) {
	db := newClauseDatabase()
	c1 := newLongClause([]Literal{PositiveLiteral(1), PositiveLiteral(2), PositiveLiteral(3)}, SourceResolution)
	key1 := db.appendLong(c1, true)

	db.delete(key1)
	if _, ok := db.Get(key1); ok {
		t.Fatalf("Get(%v) after delete: ok = true, want false", key1)
	}

	c2 := newLongClause([]Literal{PositiveLiteral(4), PositiveLiteral(5), PositiveLiteral(6)}, SourceResolution)
	key2 := db.appendLong(c2, true)

	if key2.Index() != key1.Index() {
		t.Fatalf("appendLong did not recycle the freed slot: got index %d, want %d", key2.Index(), key1.Index())
	}
	if key2 == key1 {
		t.Errorf("recycled key %v compares equal to the stale key %v", key2, key1)
	}
	if _, ok := db.Get(key1); ok {
		t.Errorf("stale key %v resolves after its slot was recycled", key1)
	}
	got, ok := db.Get(key2)
	if !ok || got != c2 {
		t.Errorf("Get(%v) = %v, %v; want %v, true", key2, got, ok, c2)
	}
}

func TestClauseDatabase_UnitRoundTrip(t *testing.T) {
	db := newClauseDatabase()
	key := db.appendUnit(PositiveLiteral(7), SourceOriginal)

	lit, ok := db.GetUnit(key)
	if !ok || lit != PositiveLiteral(7) {
		t.Fatalf("GetUnit(%v) = %v, %v; want PositiveLiteral(7), true", key, lit, ok)
	}

	db.delete(key)
	if _, ok := db.GetUnit(key); ok {
		t.Errorf("GetUnit(%v) after delete: ok = true, want false", key)
	}
}

func TestClauseDatabase_PromoteToBinary(t *testing.T) {
	db := newClauseDatabase()
	c := newLongClause([]Literal{PositiveLiteral(1), PositiveLiteral(2)}, SourceResolution)
	longKey := db.appendLong(c, true)

	binKey := db.promoteToBinary(longKey)

	if _, ok := db.Get(longKey); ok {
		t.Errorf("Get(%v) after promotion: ok = true, want the long key stale", longKey)
	}
	got, ok := db.Get(binKey)
	if !ok || got != c {
		t.Fatalf("Get(%v) = %v, %v; want %v, true", binKey, got, ok, c)
	}
}
