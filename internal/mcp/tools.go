package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listDocumentsTool = mcp.NewTool("list_documents",
	mcp.WithDescription("List the signed-in user's analyzed contracts with their risk level and summary."),
	mcp.WithString("query",
		mcp.Description("Case-insensitive text to match against titles and summaries"),
	),
	mcp.WithString("risk_level",
		mcp.Description("Only return documents at this risk level"),
		mcp.Enum("낮음", "중간", "높음"),
	),
)

var getDocumentTool = mcp.NewTool("get_document",
	mcp.WithDescription("Get the full analysis of one contract (metadata, risk profile, clauses, terms) as JSON."),
	mcp.WithString("document_id",
		mcp.Required(),
		mcp.Description("Document id as returned by list_documents"),
	),
)

var askLegalQuestionTool = mcp.NewTool("ask_legal_question",
	mcp.WithDescription("Ask the legal Q&A service a question. The answer is markdown."),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The question in natural language"),
	),
	mcp.WithString("language",
		mcp.Description("Answer language"),
		mcp.Enum("ko", "en", "vi"),
	),
)
