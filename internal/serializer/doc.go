// Package serializer renders an ast.Diagram back to Mermaid class diagram
// text. Output is canonical rather than source-identical: statements come in
// a fixed order, arrows always point right and 'TD' becomes 'TB' — but the
// author's style survives where it is part of the model (type notation,
// identifier escaping, member order, frontmatter bytes).
package serializer
