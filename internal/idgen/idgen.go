// Package idgen 基于 snowflake 生成用户 ID：单调递增的数字字符串。
package idgen

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator 封装一个 snowflake 节点
type Generator struct {
	node *snowflake.Node
}

// New 创建生成器，nodeID 取值 [0, 1023]
func New(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &Generator{node: node}, nil
}

// NextID 生成下一个 ID
func (g *Generator) NextID() string {
	return g.node.Generate().String()
}
