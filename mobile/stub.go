//go:build !mobile

// Package mobile 在普通构建中只有这个占位文件，
// ebitenmobile 入口见 mobile.go（需要 -tags mobile 和 make prepare-mobile）。
package mobile

// Dummy 保证包在桌面端构建时也能被引用
func Dummy() {}
