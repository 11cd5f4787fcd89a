package async

import (
	"github.com/corewireui/retcore/component"
	"github.com/corewireui/retcore/renderer"
)

// Lazy returns a component.Template that, on first instantiation, calls
// loader for a Source producing the real template, behaving like Async
// until it settles: Fallback is shown meanwhile, and a rejection is
// surfaced through Catch exactly as Async does. There is no Go analogue
// of a module's default export, so loader's Source resolves directly to
// the component.Template to mount, per spec §4.7.
func Lazy(loader func() Source[component.Template], fallback any, catch func(error) any) component.Template {
	return func(props map[string]any, children ...any) any {
		return func(r *renderer.R) any {
			return Async(r, AsyncProps[component.Template]{
				Future:   loader(),
				Fallback: fallback,
				Catch:    catch,
			}, func(tmpl component.Template) any {
				return r.C(tmpl, props, children...)
			})
		}
	}
}
