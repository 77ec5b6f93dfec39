// Package listview provides the scrolling record list used by the applications view.
//
// The list only renders the rows around the viewport, so it stays cheap as pages
// accumulate. Items can be appended while the list is on screen; the selection
// is kept where it was. AtEnd reports when the cursor sits on the last item so
// the owning view can decide to fetch another page.
package listview
