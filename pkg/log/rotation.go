package log

import (
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRotatingFileWriter devolve um escritor que rotaciona o arquivo quando
// ele atinge maxSizeMB, mantendo as rotações anteriores ao lado do arquivo
// ativo. O diretório do arquivo é criado se ainda não existir.
func NewRotatingFileWriter(path string, maxSizeMB int) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	return &lumberjack.Logger{
		Filename: path,
		MaxSize:  maxSizeMB,
	}, nil
}
