// Package core assembles widgets from composable enhancers.
//
// A widget starts as a base [Component] created by [NewBase], which knows its
// class prefix and component name. Enhancers then each add one capability:
//
//	c := compose.Pipe(
//	    core.WithEvents(),
//	    core.WithElement(core.ElementOptions{Tag: "button", Interactive: true}),
//	    core.WithVariant("filled"),
//	    core.WithText(core.TextConfig{Text: "Save"}),
//	    core.WithDisabled(false),
//	    core.WithLifecycle(),
//	)(core.NewBase(core.BaseConfig{ComponentName: "button"}))
//
// Each enhancer has the shape func(*Component) *Component. It takes ownership
// of the component, mutates it and hands it to the next stage; the component
// is never shared between pipelines. Capabilities that need a native input
// move the pipeline to [InputComponent] with [WithInput], so [WithCheckable]
// cannot be applied to a component without one.
//
// Missing optional configuration never fails: the capability is skipped.
// DOM failures (an invalid tag name) panic inside the pipeline and are turned
// into errors by the widget factory.
//
// # Class names
//
// Class names follow BEM: GetClass("card") is "mtrl-card",
// ModifierClass("mtrl-card", "outlined") is "mtrl-card--outlined" and
// ElementClass("mtrl-card", "media") is "mtrl-card-media".
package core
