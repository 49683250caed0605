// Package mcp exposes a resolved symbol table over the Model Context
// Protocol, so agent tooling can look up Alumina symbols and their
// documentation links without scraping generated HTML.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/CyberFlameGO/alumina/internal/doc"
)

const instructions = `Tools for querying resolved Alumina documentation symbols.
Paths use "::" separators (std::collections::Vector). lookup_symbol returns
the facts known about one path, resolve_link resolves a reference the way a
doc comment in the given scope would, and list_scope lists a module's
direct children.`

// Server serves symbol queries over a read-only resolved bag.
type Server struct {
	mcpServer *server.MCPServer
	bag       *doc.Bag
	links     *doc.LinkContext
}

// NewServer wraps a resolved, sorted bag. The bag must not be mutated or
// freed while the server runs.
func NewServer(bag *doc.Bag, links *doc.LinkContext) *Server {
	s := &Server{bag: bag, links: links}

	mcpServer := server.NewMCPServer(
		"aludoc",
		"1.0.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
	)
	s.registerTools(mcpServer)
	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("lookup_symbol",
			mcp.WithDescription("Look up an Alumina symbol by its full path. Returns kind, declaration site, doc comment and page link."),
			mcp.WithString("path",
				mcp.Description("Full item path, e.g. \"std::collections::Vector\""),
				mcp.Required(),
			),
		),
		s.handleLookupSymbol,
	)

	mcpServer.AddTool(
		mcp.NewTool("resolve_link",
			mcp.WithDescription("Resolve a path reference the way a doc comment would, including import aliases, glob imports and enclosing scopes. Returns the page URL."),
			mcp.WithString("reference",
				mcp.Description("The referenced path, absolute or relative to scope"),
				mcp.Required(),
			),
			mcp.WithString("scope",
				mcp.Description("Scope the reference is written in (default: root)"),
			),
		),
		s.handleResolveLink,
	)

	mcpServer.AddTool(
		mcp.NewTool("list_scope",
			mcp.WithDescription("List the direct children of a module or type, in documentation order."),
			mcp.WithString("path",
				mcp.Description("Scope path; empty lists the root"),
			),
		),
		s.handleListScope,
	)
}

type symbolInfo struct {
	Path      string `json:"path"`
	Kind      string `json:"kind"`
	DefinedIn string `json:"defined_in"`
	CfgIndex  int    `json:"cfg_index,omitempty"`
	Exported  bool   `json:"exported"`
	Doc       string `json:"doc,omitempty"`
	Link      string `json:"link,omitempty"`
	File      string `json:"file,omitempty"`
	Offset    int    `json:"offset,omitempty"`
}

func (s *Server) describe(it *doc.Item) symbolInfo {
	return symbolInfo{
		Path:      it.Path.String(),
		Kind:      it.Kind.String(),
		DefinedIn: it.DefinedIn.String(),
		CfgIndex:  it.CfgIndex,
		Exported:  it.IsExported(),
		Doc:       it.Doc,
		Link:      s.links.LinkForItem(it, false, false),
		File:      it.File,
		Offset:    it.Offset,
	}
}

func (s *Server) handleLookupSymbol(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	if path == "" {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	it := s.bag.Get(doc.ParsePath(path))
	if it == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no symbol at %s", path)), nil
	}

	resultJSON, _ := json.MarshalIndent(s.describe(it), "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleResolveLink(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	reference, _ := args["reference"].(string)
	if reference == "" {
		return mcp.NewToolResultError("missing required parameter: reference"), nil
	}
	scope, _ := args["scope"].(string)

	it := s.bag.Resolve(doc.ParsePath(scope), doc.ParsePath(reference), true)
	if it == nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s does not resolve in scope %s", reference, scope)), nil
	}

	resultJSON, _ := json.MarshalIndent(s.describe(it), "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) handleListScope(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	path, _ := args["path"].(string)
	scope := doc.ParsePath(path)

	children := s.bag.Filtered(func(it *doc.Item) bool {
		return it.Path.Len() == scope.Len()+1 && it.Path.HasPrefix(scope)
	})
	if len(children) == 0 {
		return mcp.NewToolResultError(fmt.Sprintf("no items under %s", scope.String())), nil
	}

	infos := make([]symbolInfo, 0, len(children))
	for _, it := range children {
		infos = append(infos, s.describe(it))
	}
	resultJSON, _ := json.MarshalIndent(infos, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

// Run serves the MCP protocol on stdio until the client disconnects.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
