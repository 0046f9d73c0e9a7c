package patternfly

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// TreeNode is one node of a treeview's contents.
type TreeNode struct {
	Text     string
	Children []TreeNode
}

// BootstrapTreeview drives a bootstrap-treeview tree. Nodes are flat <li>
// elements carrying a data-nodeid; nesting is expressed through dotted
// node ids and indent spans.
type BootstrapTreeview struct {
	root playwright.Locator
	log  zerolog.Logger
	id   string
}

const (
	treeExpandIcon = `./span[contains(@class, "expand-icon")]`
	treeExpanded   = `./span[contains(@class, "expand-icon") and contains(@class, "fa-angle-down")]`
	treeLoading    = `./span[contains(@class, "expand-icon") and contains(@class, "fa-spinner")]`
	treeCheckIcon  = `./span[contains(@class, "check-icon")]`
	treeChecked    = `./span[contains(@class, "check-icon") and contains(@class, "fa-check-square-o")]`
	treeIndent     = `./span[contains(@class, "indent")]`
)

// BootstrapTreeview constructs the widget for the tree with the given
// element id.
func (v *View) BootstrapTreeview(id string) *BootstrapTreeview {
	expr := fmt.Sprintf(`.//*[@id=%s]`, Quote(id))
	return &BootstrapTreeview{root: v.xp(expr).First(), log: v.log, id: id}
}

// IsDisplayed reports whether the tree is visible.
func (t *BootstrapTreeview) IsDisplayed() (bool, error) {
	return t.root.IsVisible()
}

// rootItems returns the nodes without any indent span, the top level of
// the tree.
func (t *BootstrapTreeview) rootItems() playwright.Locator {
	return childXP(t.root, `./ul/li[not(./span[contains(@class, "indent")])]`)
}

// childItems returns the direct children of the node with the given id:
// nodes whose id extends it and which sit exactly one indent deeper.
func (t *BootstrapTreeview) childItems(nodeID string, indent int) playwright.Locator {
	return childXP(t.root, fmt.Sprintf(
		`./ul/li[starts-with(@data-nodeid, %s) and count(./span[contains(@class, "indent")])=%d]`,
		Quote(nodeID+"."), indent))
}

func nodeID(item playwright.Locator) (string, error) {
	return item.GetAttribute("data-nodeid")
}

func indentCount(item playwright.Locator) (int, error) {
	return childXP(item, treeIndent).Count()
}

// IsExpandable reports whether the node has children to expand.
func (t *BootstrapTreeview) IsExpandable(item playwright.Locator) (bool, error) {
	icon := childXP(item, treeExpandIcon)
	ok, err := exists(icon)
	if err != nil || !ok {
		return false, err
	}
	// Leaf nodes still render the span, without an angle icon.
	classes, err := elementClasses(icon.First())
	if err != nil {
		return false, err
	}
	for _, c := range classes {
		if strings.HasPrefix(c, "fa-angle-") {
			return true, nil
		}
	}
	return false, nil
}

// IsExpanded reports whether the node currently shows its children.
func (t *BootstrapTreeview) IsExpanded(item playwright.Locator) (bool, error) {
	return exists(childXP(item, treeExpanded))
}

// ExpandNode makes sure the node's children are shown, waiting out any
// lazy-loading spinner.
func (t *BootstrapTreeview) ExpandNode(item playwright.Locator) error {
	expandable, err := t.IsExpandable(item)
	if err != nil || !expandable {
		return err
	}
	expanded, err := t.IsExpanded(item)
	if err != nil || expanded {
		return err
	}
	if err := childXP(item, treeExpandIcon).First().Click(); err != nil {
		return err
	}
	return waitUntil(defaultWaitTimeout, func() (bool, error) {
		loading, err := exists(childXP(item, treeLoading))
		if err != nil || loading {
			return false, err
		}
		return t.IsExpanded(item)
	})
}

// CollapseNode hides the node's children.
func (t *BootstrapTreeview) CollapseNode(item playwright.Locator) error {
	expanded, err := t.IsExpanded(item)
	if err != nil || !expanded {
		return err
	}
	return childXP(item, treeExpandIcon).First().Click()
}

// TreeStep matches one step of a tree path, by exact text or, when
// Pattern is set, by regular expression. When Icon is set the node must
// additionally render that icon.
type TreeStep struct {
	Text    string
	Pattern *regexp.Regexp
	Icon    Icon
}

func (s TreeStep) matches(text string) bool {
	if s.Pattern != nil {
		return s.Pattern.MatchString(text)
	}
	return text == s.Text
}

func (s TreeStep) iconMatches(item playwright.Locator) (bool, error) {
	if s.Icon == IconNone {
		return true, nil
	}
	return exists(childXP(item, fmt.Sprintf(
		`./span[contains(@class, "node-icon") and contains(@class, %s)]`, Quote(string(s.Icon)))))
}

func (s TreeStep) String() string {
	if s.Pattern != nil {
		return s.Pattern.String()
	}
	return s.Text
}

func textSteps(path []string) []TreeStep {
	steps := make([]TreeStep, len(path))
	for i, text := range path {
		steps[i] = TreeStep{Text: text}
	}
	return steps
}

func stepStrings(steps []TreeStep) []string {
	texts := make([]string, len(steps))
	for i, step := range steps {
		texts[i] = step.String()
	}
	return texts
}

// findChild locates the node matching the step among the candidates.
func findChild(candidates playwright.Locator, step TreeStep) (playwright.Locator, error) {
	all, err := candidates.All()
	if err != nil {
		return nil, err
	}
	for _, item := range all {
		itemText, err := elementText(item)
		if err != nil {
			return nil, err
		}
		if !step.matches(itemText) {
			continue
		}
		ok, err := step.iconMatches(item)
		if err != nil {
			return nil, err
		}
		if ok {
			return item, nil
		}
	}
	return nil, nil
}

// ExpandPath walks the given path from the root, expanding every step,
// and returns the node at the end of the path.
func (t *BootstrapTreeview) ExpandPath(path ...string) (playwright.Locator, error) {
	return t.ExpandPathSteps(textSteps(path)...)
}

// ExpandPathSteps is ExpandPath with per-step matching, allowing regular
// expression steps.
func (t *BootstrapTreeview) ExpandPathSteps(steps ...TreeStep) (playwright.Locator, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("treeview %q: empty path", t.id)
	}
	path := stepStrings(steps)
	t.log.Debug().Str("tree", t.id).Str("path", strings.Join(path, " / ")).Msg("expanding path")
	current, err := findChild(t.rootItems(), steps[0])
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, &CandidateNotFoundError{
			Message: fmt.Sprintf("treeview %q: no root node %q", t.id, path[0]),
			Path:    path,
		}
	}
	for i, step := range steps[1:] {
		if err := t.ExpandNode(current); err != nil {
			return nil, &CandidateNotFoundError{
				Message: fmt.Sprintf("treeview %q: cannot expand %q", t.id, path[i]),
				Path:    path,
				Cause:   err,
			}
		}
		id, err := nodeID(current)
		if err != nil {
			return nil, err
		}
		indent, err := indentCount(current)
		if err != nil {
			return nil, err
		}
		next, err := findChild(t.childItems(id, indent+1), step)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, &CandidateNotFoundError{
				Message: fmt.Sprintf("treeview %q: no node %q under %q", t.id, path[i+1], path[i]),
				Path:    path,
			}
		}
		current = next
	}
	return current, nil
}

// ClickPath expands the path and clicks the node at its end.
func (t *BootstrapTreeview) ClickPath(path ...string) error {
	item, err := t.ExpandPath(path...)
	if err != nil {
		return err
	}
	return item.Click()
}

// HasPath reports whether the path exists in the tree. Walking it expands
// the intermediate nodes. A step that failed for an underlying reason,
// like a node that never expanded, still surfaces as an error.
func (t *BootstrapTreeview) HasPath(path ...string) (bool, error) {
	_, err := t.ExpandPath(path...)
	if err != nil {
		var notFound *CandidateNotFoundError
		if errors.As(err, &notFound) && notFound.Cause == nil {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CurrentlySelected returns the root-to-node path of the selected node,
// reconstructed from its dotted nodeid, or nil when nothing is selected.
func (t *BootstrapTreeview) CurrentlySelected() ([]string, error) {
	selected := childXP(t.root, `./ul/li[contains(@class, "node-selected")]`)
	ok, err := exists(selected)
	if err != nil || !ok {
		return nil, err
	}
	id, err := nodeID(selected.First())
	if err != nil {
		return nil, err
	}
	parts := strings.Split(id, ".")
	path := make([]string, 0, len(parts))
	for i := range parts {
		prefix := strings.Join(parts[:i+1], ".")
		text, err := elementText(childXP(t.root, fmt.Sprintf("./ul/li[@data-nodeid=%s]", Quote(prefix))))
		if err != nil {
			return nil, err
		}
		path = append(path, text)
	}
	return path, nil
}

// ReadContents reads the fully expanded tree into TreeNodes.
func (t *BootstrapTreeview) ReadContents() ([]TreeNode, error) {
	roots, err := t.rootItems().All()
	if err != nil {
		return nil, err
	}
	var contents []TreeNode
	for _, item := range roots {
		node, err := t.readNode(item)
		if err != nil {
			return nil, err
		}
		contents = append(contents, node)
	}
	return contents, nil
}

func (t *BootstrapTreeview) readNode(item playwright.Locator) (TreeNode, error) {
	text, err := elementText(item)
	if err != nil {
		return TreeNode{}, err
	}
	node := TreeNode{Text: text}
	if err := t.ExpandNode(item); err != nil {
		return TreeNode{}, err
	}
	id, err := nodeID(item)
	if err != nil {
		return TreeNode{}, err
	}
	indent, err := indentCount(item)
	if err != nil {
		return TreeNode{}, err
	}
	children, err := t.childItems(id, indent+1).All()
	if err != nil {
		return TreeNode{}, err
	}
	for _, child := range children {
		childNode, err := t.readNode(child)
		if err != nil {
			return TreeNode{}, err
		}
		node.Children = append(node.Children, childNode)
	}
	return node, nil
}

// CheckableBootstrapTreeview adds checkbox handling to a treeview whose
// nodes render check icons.
type CheckableBootstrapTreeview struct {
	BootstrapTreeview
}

// CheckableBootstrapTreeview constructs the widget for the checkable tree
// with the given element id.
func (v *View) CheckableBootstrapTreeview(id string) *CheckableBootstrapTreeview {
	expr := fmt.Sprintf(`.//*[@id=%s]`, Quote(id))
	return &CheckableBootstrapTreeview{BootstrapTreeview{
		root: v.xp(expr).First(), log: v.log, id: id,
	}}
}

// IsNodeChecked reports whether the node at the end of the path is checked.
func (t *CheckableBootstrapTreeview) IsNodeChecked(path ...string) (bool, error) {
	item, err := t.ExpandPath(path...)
	if err != nil {
		return false, err
	}
	return exists(childXP(item, treeChecked))
}

func (t *CheckableBootstrapTreeview) setNode(check bool, path []string) error {
	item, err := t.ExpandPath(path...)
	if err != nil {
		return err
	}
	checkable, err := exists(childXP(item, treeCheckIcon))
	if err != nil {
		return err
	}
	if !checkable {
		return fmt.Errorf("treeview %q: node %q is not checkable", t.id, path[len(path)-1])
	}
	checked, err := exists(childXP(item, treeChecked))
	if err != nil || checked == check {
		return err
	}
	return childXP(item, treeCheckIcon).First().Click()
}

// CheckNode checks the node at the end of the path if it is unchecked.
func (t *CheckableBootstrapTreeview) CheckNode(path ...string) error {
	return t.setNode(true, path)
}

// UncheckNode unchecks the node at the end of the path if it is checked.
func (t *CheckableBootstrapTreeview) UncheckNode(path ...string) error {
	return t.setNode(false, path)
}
