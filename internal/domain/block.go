package domain

import (
	"strings"
	"time"
)

// Block is a node in the page content tree. Settings hold content and
// behavioral configuration; Styles hold visual configuration, optionally
// layered by viewport (see the style package). Children is non-nil (possibly
// empty) exactly when CanHaveChildren(Type) holds.
type Block struct {
	ID            string         `json:"id"`
	Type          BlockType      `json:"type"`
	Name          string         `json:"name"`
	Settings      map[string]any `json:"settings"`
	Styles        map[string]any `json:"styles"`
	Children      []*Block       `json:"children,omitempty"`
	SharedStyleID string         `json:"sharedStyleId,omitempty"`
}

// SharedStyle is a named style/settings bundle several blocks of the same
// type can reference for synchronized appearance. It holds only the
// style-syncable subset of a block's payload; content fields never enter it.
type SharedStyle struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	BlockType BlockType      `json:"blockType"`
	Settings  map[string]any `json:"settings"`
	Styles    map[string]any `json:"styles"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Document is the aggregate a repository persists and an editor store loads:
// the root block list plus document-level settings and the active language.
type Document struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Blocks       []*Block       `json:"blocks"`
	PageSettings map[string]any `json:"pageSettings"`
	Language     string         `json:"language"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// Normalize re-establishes the children-presence invariant on b and all
// descendants: child-bearing types get a non-nil slice, leaf types get nil.
// JSON round-trips drop empty slices, so repositories call this after load.
func Normalize(b *Block) {
	if b == nil {
		return
	}
	if CanHaveChildren(b.Type) {
		if b.Children == nil {
			b.Children = []*Block{}
		}
	} else {
		b.Children = nil
	}
	if b.Settings == nil {
		b.Settings = map[string]any{}
	}
	if b.Styles == nil {
		b.Styles = map[string]any{}
	}
	for _, c := range b.Children {
		Normalize(c)
	}
}

// PathSeparator joins block names in flattened listing paths.
const PathSeparator = " > "

// FlatBlock is one entry of a pre-order tree listing.
type FlatBlock struct {
	Block *Block
	// Path is the human-readable label chain from the root to this block.
	Path string
	// Depth is 1 for direct children of a root block's parent list.
	Depth int
}

// Flatten lists every block reachable from roots in depth-first pre-order,
// parent before children. Blocks without children contribute themselves only.
func Flatten(roots []*Block) []FlatBlock {
	var out []FlatBlock
	for _, r := range roots {
		flattenInto(r, nil, 1, &out)
	}
	return out
}

func flattenInto(b *Block, ancestors []string, depth int, out *[]FlatBlock) {
	if b == nil {
		return
	}
	labels := append(append([]string{}, ancestors...), b.Name)
	*out = append(*out, FlatBlock{
		Block: b,
		Path:  strings.Join(labels, PathSeparator),
		Depth: depth,
	})
	for _, c := range b.Children {
		flattenInto(c, labels, depth+1, out)
	}
}

// Descendants returns the pre-order listing of b's descendants, excluding b.
func Descendants(b *Block) []FlatBlock {
	if b == nil {
		return nil
	}
	all := Flatten([]*Block{b})
	return all[1:]
}

// ByPath walks path as successive child indices starting at root. An empty
// path returns root itself. Any out-of-range index yields (nil, false).
func ByPath(root *Block, path []int) (*Block, bool) {
	cur := root
	if cur == nil {
		return nil, false
	}
	for _, idx := range path {
		if idx < 0 || idx >= len(cur.Children) {
			return nil, false
		}
		cur = cur.Children[idx]
	}
	return cur, true
}

// FindByID searches roots depth-first for a block with the given id.
func FindByID(roots []*Block, id string) *Block {
	for _, r := range roots {
		if found := findInTree(r, id); found != nil {
			return found
		}
	}
	return nil
}

func findInTree(b *Block, id string) *Block {
	if b == nil {
		return nil
	}
	if b.ID == id {
		return b
	}
	for _, c := range b.Children {
		if found := findInTree(c, id); found != nil {
			return found
		}
	}
	return nil
}
