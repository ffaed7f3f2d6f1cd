package nav_test

import (
	"testing"

	"github.com/yaklabco/xmlnav/pkg/explore"
	"github.com/yaklabco/xmlnav/pkg/nav"
)

func newNavigator(t *testing.T, doc string) *nav.Navigator {
	t.Helper()
	return nav.New(explore.New([]byte(doc)))
}

func TestNavigator_InitialState(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, "<a><b/></a>")

	if n.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", n.Depth())
	}
	vm := n.View(0)
	if vm.Tag != "" {
		t.Errorf("root level tag = %q, want empty", vm.Tag)
	}
	if vm.Count != 1 || vm.Entries[0].Tag != "a" {
		t.Errorf("root level should hold the single document element, got %+v", vm.Entries)
	}
}

func TestNavigator_EmptyDocument(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, "   ")

	// All transitions are no-ops on an elementless buffer.
	n.MoveDown()
	n.MoveUp()
	n.Descend()
	n.Ascend()
	n.ToggleDetail()

	if n.Depth() != 0 || n.Selected() != 0 {
		t.Errorf("empty document moved state: depth %d selected %d", n.Depth(), n.Selected())
	}
	if n.DetailOpen() {
		t.Error("detail view opened with no selectable node")
	}
	if vm := n.View(0); vm.Count != 0 {
		t.Errorf("expected zero children, got %d", vm.Count)
	}
}

func TestNavigator_MovementClamps(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, "<a><b/><c/><d/></a>")
	n.Descend() // into <a>, three children

	n.MoveUp()
	if n.Selected() != 0 {
		t.Errorf("MoveUp at index 0 moved to %d", n.Selected())
	}

	n.Last()
	if n.Selected() != 2 {
		t.Fatalf("Last moved to %d, want 2", n.Selected())
	}
	n.MoveDown()
	if n.Selected() != 2 {
		t.Errorf("MoveDown at last index moved to %d", n.Selected())
	}

	n.First()
	if n.Selected() != 0 {
		t.Errorf("First moved to %d, want 0", n.Selected())
	}

	n.SetPageSize(2)
	n.PageDown()
	if n.Selected() != 2 {
		t.Errorf("PageDown moved to %d, want 2", n.Selected())
	}
	n.PageDown()
	if n.Selected() != 2 {
		t.Errorf("PageDown past end moved to %d, want 2", n.Selected())
	}
	n.PageUp()
	if n.Selected() != 0 {
		t.Errorf("PageUp moved to %d, want 0", n.Selected())
	}
}

func TestNavigator_DescendAscendRestoresSelection(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, "<a><b>1</b><b>2</b><c><d/></c></a>")
	n.Descend() // into <a>

	n.MoveDown()
	n.MoveDown() // select <c>, index 2
	if n.Selected() != 2 {
		t.Fatalf("selection = %d, want 2", n.Selected())
	}

	n.Descend() // into <c>
	if n.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", n.Depth())
	}
	if n.Selected() != 0 {
		t.Errorf("selection after descend = %d, want 0", n.Selected())
	}

	n.Ascend()
	if n.Depth() != 1 {
		t.Fatalf("Depth after ascend = %d, want 1", n.Depth())
	}
	if n.Selected() != 2 {
		t.Errorf("selection after ascend = %d, want the pre-descend value 2", n.Selected())
	}
}

func TestNavigator_AscendAtRootIsNoOp(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, "<a/>")
	n.Ascend()
	if n.Depth() != 0 {
		t.Errorf("Ascend at root changed depth to %d", n.Depth())
	}
}

func TestNavigator_DescendIntoLeaf(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, "<a><c/></a>")
	n.Descend() // into <a>
	n.Descend() // into <c>, which has no children

	vm := n.View(0)
	if vm.Tag != "c" || vm.Count != 0 {
		t.Errorf("leaf level = %q with %d children, want c with 0", vm.Tag, vm.Count)
	}

	// Movement inside an empty level pins the cursor at 0.
	n.MoveDown()
	n.Last()
	if n.Selected() != 0 {
		t.Errorf("selection in empty level = %d, want 0", n.Selected())
	}
}

func TestNavigator_ToggleDetail(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, `<a><b k1="v1" k2="v2">1</b><c/></a>`)
	n.Descend() // into <a>

	n.ToggleDetail()
	vm := n.View(0)
	if vm.Detail == nil {
		t.Fatal("detail view did not open")
	}
	if len(vm.Detail.Attrs) != 2 {
		t.Errorf("detail attrs = %d, want 2", len(vm.Detail.Attrs))
	}
	if vm.Detail.ChildCount != 0 {
		t.Errorf("detail child count = %d, want 0", vm.Detail.ChildCount)
	}

	// Moving keeps the open detail pointed at the selection: <c/> has
	// zero attributes and zero children.
	n.MoveDown()
	vm = n.View(0)
	if vm.Detail == nil {
		t.Fatal("detail view closed on movement")
	}
	if len(vm.Detail.Attrs) != 0 || vm.Detail.ChildCount != 0 {
		t.Errorf("detail for <c/> = %d attrs, %d children, want 0 and 0",
			len(vm.Detail.Attrs), vm.Detail.ChildCount)
	}

	n.ToggleDetail()
	if n.View(0).Detail != nil {
		t.Error("detail view did not close")
	}
}

func TestNavigator_ViewModel(t *testing.T) {
	t.Parallel()

	n := newNavigator(t, `<a><b long="aaaaaaaaaaaaaaaaaaaaaaaa">hello</b><c/></a>`)
	n.Descend()

	vm := n.View(10)
	if vm.Tag != "a" {
		t.Errorf("level tag = %q, want a", vm.Tag)
	}
	if len(vm.Path) != 1 || vm.Path[0] != "a" {
		t.Errorf("path = %v, want [a]", vm.Path)
	}
	if vm.Count != 2 {
		t.Fatalf("count = %d, want 2", vm.Count)
	}
	if vm.Entries[0].Text != "hello" {
		t.Errorf("entry text = %q, want hello", vm.Entries[0].Text)
	}
	if got := len([]rune(vm.Entries[0].AttrPreview)); got > 10 {
		t.Errorf("attr preview is %d runes, want at most 10", got)
	}
	if vm.Entries[1].AttrPreview != "" {
		t.Errorf("entry without attributes has preview %q", vm.Entries[1].AttrPreview)
	}

	// Width 0 disables previews entirely.
	if vm := n.View(0); vm.Entries[0].AttrPreview != "" {
		t.Errorf("preview with width 0 = %q, want empty", vm.Entries[0].AttrPreview)
	}
}
