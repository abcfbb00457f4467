// Package drivetext retrieves readable text from documents shown in a
// restricted, view-only web viewer. It drives a browser to load and scroll
// the viewer, reads the rendered text, and scrubs it of viewer chrome,
// tracking scripts, and structured-data leakage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, regexp/).
package drivetext
