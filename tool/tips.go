package tool

import (
	"github.com/hupe1980/tourmesh/core"
)

type getLocalTipsArgs struct {
	Category string `json:"category" description:"Tip category: transport, food, culture, safety or events"`
}

// NewGetLocalTipsTool returns the get_local_tips capability. Unknown
// categories succeed with an empty tip list.
func NewGetLocalTipsTool(ds *Dataset) *FunctionTool {
	return NewFunctionToolFromStruct(
		"get_local_tips",
		"Get insider tips for visiting Lagos during Detty-December",
		getLocalTipsArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			category := stringArg(args, "category", "")

			tips := ds.TipsFor(category)
			if tips == nil {
				tips = []string{}
			}

			return map[string]any{
				"category":     category,
				"tips":         tips,
				"last_updated": ds.Tips.Updated,
				"source":       ds.Tips.Source,
			}, nil
		},
	)
}
