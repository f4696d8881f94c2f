package stats

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// TierReportRender 定義輸出行為
type TierReportRender interface {
	Write(w io.Writer, r *TierReport) error
}

// Json渲染
type JsonTierReportRender struct{}

func (jr *JsonTierReportRender) Write(w io.Writer, r *TierReport) error {
	return json.NewEncoder(w).Encode(r)
}

// YAML渲染
type YAMLTierReportRender struct{}

func (yr *YAMLTierReportRender) Write(w io.Writer, r *TierReport) error {
	// 一維陣列（Counts/Freq/Labels）輸出成 flow style：[..., ...]，
	// 其他節點維持預設展開，讓報表好讀也好 diff。
	var node yaml.Node
	if err := node.Encode(r); err != nil {
		return err
	}
	styleReadableSequences(&node)

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&node)
}

// styleReadableSequences 自頂向下調整 sequence node 的 style：
// 沒有子 sequence 的（最內層一維）用 flow style，其餘保持 block。
func styleReadableSequences(n *yaml.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case yaml.DocumentNode, yaml.MappingNode:
		for _, c := range n.Content {
			styleReadableSequences(c)
		}

	case yaml.SequenceNode:
		hasChildSeq := false
		for _, c := range n.Content {
			if c != nil && c.Kind == yaml.SequenceNode {
				hasChildSeq = true
				break
			}
		}
		for _, c := range n.Content {
			styleReadableSequences(c)
		}
		if !hasChildSeq {
			n.Style = yaml.FlowStyle
		}
	}
}
