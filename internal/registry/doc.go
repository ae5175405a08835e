// Package registry maps resource types onto their documentation behavior:
// which view page a resource belongs to, its ordering priority, its built-in
// description table, and whether it emits a table of its own.
//
// The mapping is a closed, compile-time table. Unknown resource types are
// skipped with a warning; nothing is resolved through reflection or
// runtime-supplied type names.
//
// The registry also performs association folding before the pipeline runs:
// junction resources such as role/policy attachments do not emit their own
// table but inject synthetic attributes into the resource that owns them.
package registry
