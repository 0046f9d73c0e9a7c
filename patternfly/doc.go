// Package patternfly maps PatternFly markup conventions onto Playwright
// locators. Each widget is a thin, stateless descriptor: it is bound to an
// XPath expression when constructed and resolves that expression against the
// live page on every interaction, so widgets never go stale between page
// loads.
//
//	view := patternfly.NewView(page)
//	btn := view.Button(patternfly.ByText("Add"), patternfly.WithClasses(patternfly.BtnPrimary))
//	if err := btn.Click(); err != nil { ... }
package patternfly
