package request

import (
	"context"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout é o tempo limite padrão das requisições
const DefaultTimeout = 10 * time.Second

// Estrutura que contém as configurações da requisição
type Options struct {
	Timeout time.Duration
	Body    io.Reader
	Headers map[string]string
	Ctx     context.Context
	Client  *http.Client
	Auth    *BasicAuth
}

// Credenciais para autenticação HTTP Basic
type BasicAuth struct {
	Username string
	Password string
}

// Tipo de função para aplicar opções à Options
type Option func(*Options)

// WithTimeout define um tempo limite para a requisição
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		o.Timeout = timeout
	}
}

// WithBody define um corpo para a requisição
func WithBody(body io.Reader) Option {
	return func(o *Options) {
		o.Body = body
	}
}

// WithHeader adiciona um cabeçalho à requisição
func WithHeader(key, value string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[key] = value
	}
}

// Adiciona múltiplos cabeçalhos de uma vez
func WithHeaders(headers map[string]string) Option {
	return func(o *Options) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		for k, v := range headers {
			o.Headers[k] = v
		}
	}
}

// WithContext permite definir um contexto para a requisição
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBasicAuth define as credenciais HTTP Basic da requisição
func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.Auth = &BasicAuth{Username: username, Password: password}
	}
}

// WithClient reutiliza um cliente HTTP existente; o timeout passa a ser
// responsabilidade dele
func WithClient(client *http.Client) Option {
	return func(o *Options) {
		o.Client = client
	}
}

// Executa uma requisição HTTP com opções personalizadas
func Do(method, url string, opts ...Option) (*http.Response, error) {
	// Configuração padrão
	options := &Options{
		Timeout: DefaultTimeout,
		Ctx:     context.Background(),
		Body:    nil,
	}

	// Aplicar todas as opções passadas
	for _, opt := range opts {
		opt(options)
	}

	// Reutiliza o cliente fornecido ou cria um com o timeout configurado
	client := options.Client
	if client == nil {
		client = &http.Client{Timeout: options.Timeout}
	}

	// Criar a requisição
	req, err := http.NewRequestWithContext(options.Ctx, method, url, options.Body)
	if err != nil {
		return nil, err
	}

	// Credenciais são aplicadas somente quando informadas
	if options.Auth != nil {
		req.SetBasicAuth(options.Auth.Username, options.Auth.Password)
	}

	// Adicionar cabeçalhos
	for k, v := range options.Headers {
		req.Header.Set(k, v)
	}

	// Executar a requisição
	return client.Do(req)
}
