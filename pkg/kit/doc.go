// Package kit standardises how a component under test is rendered, queried,
// interacted with and awaited.
//
// A Config bundles a render function, a component and a default-properties
// provider. Optional builders derive named element accessors from the render
// output, and named event firers and async waiters from those accessors:
//
//	var renderButton = kit.SetAsync(
//		kit.SetFire(
//			kit.SetElements(
//				kit.Create(dom.Render, Button, props.Fresh(defaultButtonProps)),
//				buttonElements,
//			),
//			buttonFire,
//		),
//		buttonWaits,
//	)
//
//	res, err := renderButton.Run(ctx, props.Fields(ButtonProps{Text: "world"}))
//
// The fire and async builders only receive the element record. Waiters that
// need the render output should read it from that record rather than from a
// variable captured by the element builder, which later runs would overwrite:
//
//	func buttonElements(s *dom.Screen) ButtonElements {
//		return ButtonElements{Screen: s, Icon: s.Getter(dom.ByTestID("icon"))}
//	}
//
//	func buttonWaits(els ButtonElements) ButtonWaits {
//		return ButtonWaits{Icon: func() *dom.Pending[*dom.Node] {
//			return dom.WaitForElement(context.Background(), els.Screen, els.Icon)
//		}}
//	}
//
// Run resolves the defaults once per call, so defaults built from fresh values
// (spies, channels) are never shared across runs. Builders that were never
// set produce the zero value of their type, Empty for an unspecialised Config.
package kit
