// Package dom binds the navigation controller to a browser page when the
// reader is compiled to WebAssembly (GOOS=js GOARCH=wasm).
//
// The page must contain the elements named by the ID constants. Post list
// rows are rendered into the posts container as cards whose title links to
// "#slug"; clicks on those links are intercepted and go through the
// controller, so middle-click and copy-link keep working.
package dom
