package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sunaba/internal/lsp"
)

const lsName = "sunaba"

var handler protocol.Handler

func main() {
	// 1 = debug level, nil = default backend
	commonlog.Configure(1, nil)

	sunabaHandler := lsp.NewHandler()

	handler = protocol.Handler{
		Initialize:                     sunabaHandler.Initialize,
		Initialized:                    sunabaHandler.Initialized,
		Shutdown:                       sunabaHandler.Shutdown,
		SetTrace:                       sunabaHandler.SetTrace,
		TextDocumentDidOpen:            sunabaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           sunabaHandler.TextDocumentDidClose,
		TextDocumentDidChange:          sunabaHandler.TextDocumentDidChange,
		TextDocumentCompletion:         sunabaHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: sunabaHandler.TextDocumentSemanticTokensFull,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting Sunaba LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting Sunaba LSP server:", err)
		os.Exit(1)
	}
}
