// Package elm lets components built on a rendering framework follow the
// Elm architecture: a pure update function turns a message and a model
// into a new model plus commands, and a dispatcher feeds messages back
// into the loop.
//
// Users import this single package for the complete public API:
// dispatcher lifecycle, messages, commands, reactive state cells, and
// command sources. The Bubble Tea bridge lives in the elmtea subpackage.
package elm
