// Package sections implements the per-section renderers that bind the profile
// document onto the page template. Each renderer reads one field of the
// document and writes into the insertion points its Target resolved; sections
// run in a fixed order but share nothing besides the document, so any of them
// can be skipped (missing data, missing container) without affecting the rest.
package sections
