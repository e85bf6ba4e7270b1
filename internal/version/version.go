// 包 version：构建信息；由构建脚本通过 -ldflags 注入
package version

var Commit = "dev"
