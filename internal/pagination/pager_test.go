package pagination

import "testing"

func TestTotalPages(t *testing.T) {
	p := New(10)
	p.SetTotal(235)

	if got := p.TotalPages(); got != 24 {
		t.Fatalf("total pages mismatch: got %d, want 24", got)
	}
}

func TestTotalPagesEmpty(t *testing.T) {
	p := New(10)

	if got := p.TotalPages(); got != 0 {
		t.Fatalf("expected 0 pages for empty pager, got %d", got)
	}
	if first, last := p.Range(); first != 0 || last != 0 {
		t.Fatalf("expected empty range, got [%d, %d]", first, last)
	}
}

func TestGoToClampsAtEdges(t *testing.T) {
	p := New(10)
	p.SetTotal(50) // 5 pages
	p.GoTo(2)

	p.GoTo(-1)
	if p.CurrentPage() != 2 {
		t.Fatalf("GoTo(-1) should be a no-op, page moved to %d", p.CurrentPage())
	}

	p.GoTo(5)
	if p.CurrentPage() != 2 {
		t.Fatalf("GoTo(totalPages) should be a no-op, page moved to %d", p.CurrentPage())
	}

	p.GoTo(4)
	if p.CurrentPage() != 4 {
		t.Fatalf("GoTo(4) should land on the last page, got %d", p.CurrentPage())
	}
}

func TestNavigation(t *testing.T) {
	p := New(10)
	p.SetTotal(35) // 4 pages

	p.Next()
	p.Next()
	if p.CurrentPage() != 2 {
		t.Fatalf("expected page 2 after two Next, got %d", p.CurrentPage())
	}

	p.Last()
	if p.CurrentPage() != 3 {
		t.Fatalf("expected last page 3, got %d", p.CurrentPage())
	}

	p.Next()
	if p.CurrentPage() != 3 {
		t.Fatalf("Next past the end should be a no-op, got %d", p.CurrentPage())
	}
	if p.HasNext() {
		t.Fatal("HasNext should be false on the last page")
	}

	p.First()
	if p.CurrentPage() != 0 {
		t.Fatalf("expected page 0 after First, got %d", p.CurrentPage())
	}
	p.Previous()
	if p.CurrentPage() != 0 {
		t.Fatalf("Previous past the start should be a no-op, got %d", p.CurrentPage())
	}
	if p.HasPrevious() {
		t.Fatal("HasPrevious should be false on the first page")
	}
}

func TestRange(t *testing.T) {
	p := New(10)
	p.SetTotal(235)
	p.GoTo(1)

	first, last := p.Range()
	if first != 11 || last != 20 {
		t.Fatalf("range mismatch: got [%d, %d], want [11, 20]", first, last)
	}

	p.Last()
	first, last = p.Range()
	if first != 231 || last != 235 {
		t.Fatalf("last page range mismatch: got [%d, %d], want [231, 235]", first, last)
	}
}

func TestSetPageSizeDoesNotReclamp(t *testing.T) {
	p := New(10)
	p.SetTotal(100)
	p.GoTo(9)

	// size change leaves the page alone; callers re-fetch to reset bounds
	p.SetPageSize(50)
	if p.CurrentPage() != 9 {
		t.Fatalf("SetPageSize must not move the page, got %d", p.CurrentPage())
	}
}
