// Package scaffold writes a planned project to disk. It creates the project
// directory, refusing to touch one that already exists, then creates parent
// directories and writes every planned file with its common indentation
// removed.
package scaffold
