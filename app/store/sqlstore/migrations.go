package sqlstore

import "embed"

// CreateTableFiles 内嵌所有建表 SQL，按文件名顺序执行。
//
//go:embed *.sql
var CreateTableFiles embed.FS
