package pipeline

import "testing"

func TestROBTagsAreMonotonicAndNeverZero(t *testing.T) {
	r := NewROB(4)
	a := r.AllocateTag()
	b := r.AllocateTag()
	if a == 0 || b == 0 {
		t.Fatalf("tags must never be zero, got %d and %d", a, b)
	}
	if b <= a {
		t.Fatalf("tags must be monotonically increasing, got %d then %d", a, b)
	}
}

func TestROBPushPeekPopProgramOrder(t *testing.T) {
	r := NewROB(4)
	t1 := r.AllocateTag()
	t2 := r.AllocateTag()
	r.Push(ROBEntry{Tag: t1, PC: 0x1000})
	r.Push(ROBEntry{Tag: t2, PC: 0x1004})

	head, ok := r.PeekHead()
	if !ok || head.Tag != t1 {
		t.Fatalf("PeekHead = %+v, want tag %d", head, t1)
	}

	r.PopHead()
	head, ok = r.PeekHead()
	if !ok || head.Tag != t2 {
		t.Fatalf("PeekHead after pop = %+v, want tag %d", head, t2)
	}
}

func TestROBFullAndEmpty(t *testing.T) {
	r := NewROB(2)
	if !r.Empty() {
		t.Fatal("new ROB should be empty")
	}
	r.Push(ROBEntry{Tag: r.AllocateTag()})
	r.Push(ROBEntry{Tag: r.AllocateTag()})
	if !r.Full() {
		t.Fatal("ROB at capacity should report full")
	}
}

func TestROBBroadcastMarksReady(t *testing.T) {
	r := NewROB(4)
	tag := r.AllocateTag()
	r.Push(ROBEntry{Tag: tag})

	r.Broadcast(tag, 42)

	e, ok := r.Get(tag)
	if !ok || !e.Ready || e.Result != 42 {
		t.Fatalf("Get(%d) = %+v, want Ready=true Result=42", tag, e)
	}
}

func TestROBClearDropsAllLiveEntries(t *testing.T) {
	r := NewROB(4)
	t1 := r.AllocateTag()
	r.Push(ROBEntry{Tag: t1})
	r.Clear()

	if !r.Empty() {
		t.Fatal("Clear should empty the ROB")
	}
	if _, ok := r.Get(t1); ok {
		t.Fatal("Clear should drop the tag index too")
	}
}

func TestROBRingWrapsAroundAfterCommits(t *testing.T) {
	r := NewROB(2)
	for i := 0; i < 5; i++ {
		tag := r.AllocateTag()
		r.Push(ROBEntry{Tag: tag, PC: uint32(i)})
		head, _ := r.PeekHead()
		if head.Tag != tag {
			t.Fatalf("iteration %d: PeekHead = %+v, want tag %d", i, head, tag)
		}
		r.PopHead()
	}
	if !r.Empty() {
		t.Fatal("ROB should be empty after matched push/pop cycles")
	}
}
