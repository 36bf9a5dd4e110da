// Package press provides shared interaction behavior for button-like
// widgets in a host-owned UI tree.
//
// Users import this single package for the complete public API: the
// behavior controller lifecycle, widget handles, toggle groups, transient
// loading / auto-disable timers, dropdown interaction, and announcements.
package press
