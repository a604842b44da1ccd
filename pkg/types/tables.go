package types

import "fmt"

type TableName string

func (s TableName) Name() string {
	return fmt.Sprintf("%s%s", TABLE_PREFIX, s)
}

const TABLE_PREFIX = "sbd_"

const (
	TABLE_WORKSPACE_EMBEDDING  = TableName("workspace_embedding")
	TABLE_QUICKSTUDY_EMBEDDING = TableName("quickstudy_embedding")
	TABLE_WORKSPACE_CHAT       = TableName("workspace_chat")
	TABLE_QUICKSTUDY_CHAT      = TableName("quickstudy_chat")
)
