// Package dom implements the in-memory host display tree that the UI
// runtime materializes virtual nodes into.
//
// A Document owns a tree of Elements and TextNodes rooted at Body. The
// server keeps one Document per live session; the runtime in pkg/ui mounts
// into an Element container, and the HTML serializer turns the tree into
// markup for the browser.
//
// Elements carry attributes, inline style entries, event listeners, and
// the live Value/Checked fields used for controlled inputs. Dispatch fires
// listeners synchronously, which is also how tests simulate clicks.
//
// Every element is assigned a stable element id (eid) at creation. The
// serializer emits it as data-eid on elements that have listeners so the
// browser client can address events back at the server-side tree.
//
// Context2D exposes a recording 2D drawing surface for canvas elements,
// addressed by element id.
package dom
