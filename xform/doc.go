// Package xform is a peripheral, optional set of form helpers built on
// this module's reactivity and renderer packages: a field's value and
// error live in a reactivity.Signal the same way any other piece of
// UI state does, validation runs against those signals directly, and
// a field's widget is an ordinary renderer.R-driven element rather
// than a static markup tree.
//
// Grounded on the teacher's form package: State's schema-driven
// per-field signal bookkeeping, validator/cross-field-validator shape
// and Submit's validate-then-call-handler sequencing carry over almost
// unchanged, since none of that depended on the teacher's gomponents
// rendering. Field/Render/FormFor and the widgets package are
// rebuilt against renderer.R element construction instead of
// gomponents Nodes, and against this module's "on:<name>" event-prop
// convention instead of the teacher's dom.OnInputInline helpers.
package xform
