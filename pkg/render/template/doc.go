// Package template defines renderer-agnostic template interfaces and
// adapters. Section renderers depend on the TemplateRenderer seam rather than
// a concrete engine so the template backend stays swappable.
package template
