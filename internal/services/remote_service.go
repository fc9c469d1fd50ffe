package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"golang.org/x/sync/singleflight"

	"eoapi/internal/events"
	"eoapi/internal/models"
	"eoapi/internal/utils"
)

const (
	statusPath     = "/system/status"
	remoteMockPath = "/mock/eo-1/"
	apiKeyHeader   = "x-api-key"
	healthyStatus  = 200
)

var (
	// ErrConfigMissing means no remote server url is configured.
	ErrConfigMissing = errors.New("remote server url is not configured")
	// ErrNetworkFailure covers transport errors and unreadable bodies.
	ErrNetworkFailure = errors.New("remote server unreachable")
	// ErrUnhealthyRemote means the server answered with a statusCode other than 200.
	ErrUnhealthyRemote = errors.New("remote server is unhealthy")
)

// PingResult is the outcome of a health check against a remote server.
// Body is set on success; Detail carries the error or the offending body
// otherwise.
type PingResult struct {
	OK     bool
	Body   map[string]any
	Detail any
	Err    error
}

// DataSourceStore persists the data source mode and the switch tip flag.
type DataSourceStore interface {
	DataSourceType() models.DataSourceMode
	ToggleDataSource(mode models.DataSourceMode) error
	ShowTip() bool
	SetShowTip(show bool) error
}

type RemoteSettings interface {
	RemoteServer() (*models.RemoteServerConfig, error)
}

type Subscriber interface {
	Subscribe(handler func(events.Message)) func()
}

type Refresher interface {
	Refresh() error
}

type LocalMockURL interface {
	GetMockURL() string
}

type SwitchTexts interface {
	DataSourceText(mode models.DataSourceMode) string
	SwitchSucceeded(mode models.DataSourceMode) string
	RemoteUnavailable() string
	SwitchFailed(mode models.DataSourceMode) string
}

type RemoteOption func(*RemoteService)

// WithHTTPClient replaces the client used for health checks. The default
// client has no timeout.
func WithHTTPClient(client *http.Client) RemoteOption {
	return func(s *RemoteService) {
		if client != nil {
			s.client = client
		}
	}
}

func WithLogger(log logger.Logger) RemoteOption {
	return func(s *RemoteService) {
		if log != nil {
			s.log = log
		}
	}
}

// RemoteService switches between the local and the remote data source.
// A switch to remote only happens after a successful health check.
type RemoteService struct {
	context  context.Context
	client   *http.Client
	log      logger.Logger
	store    DataSourceStore
	settings RemoteSettings
	notifier Notifier
	router   Refresher
	host     LocalMockURL
	texts    SwitchTexts

	mu   sync.RWMutex
	mode models.DataSourceMode

	flight      singleflight.Group
	unsubscribe func()
}

func NewRemoteService(store DataSourceStore, settings RemoteSettings, bus Subscriber, notifier Notifier, router Refresher, host LocalMockURL, texts SwitchTexts, opts ...RemoteOption) *RemoteService {
	s := &RemoteService{
		client:   http.DefaultClient,
		log:      logger.NewDefaultLogger(),
		store:    store,
		settings: settings,
		notifier: notifier,
		router:   router,
		host:     host,
		texts:    texts,
		mode:     store.DataSourceType(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if bus != nil {
		s.unsubscribe = bus.Subscribe(s.handleMessage)
	}
	return s
}

func (s *RemoteService) Startup(ctx context.Context) {
	s.context = ctx
}

// Shutdown stops listening to the message bus.
func (s *RemoteService) Shutdown() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *RemoteService) ctx() context.Context {
	if s.context == nil {
		return context.Background()
	}
	return s.context
}

func (s *RemoteService) handleMessage(msg events.Message) {
	switch m := msg.(type) {
	case events.DataSourceChange:
		s.OnExternalModeChange(m.DataSourceType)
	}
}

func (s *RemoteService) DataSourceType() models.DataSourceMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *RemoteService) IsRemote() bool {
	return s.DataSourceType().IsRemote()
}

// DataSourceText is the localized name of the current data source.
func (s *RemoteService) DataSourceText() string {
	return s.texts.DataSourceText(s.DataSourceType())
}

func (s *RemoteService) setMode(mode models.DataSourceMode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

// MockURL is the base url serving mocks for the active data source.
func (s *RemoteService) MockURL() string {
	if s.IsRemote() {
		base := ""
		if cfg, err := s.settings.RemoteServer(); err != nil {
			s.log.Warning(fmt.Sprintf("remote: read remote server settings: %v", err))
		} else if cfg != nil {
			base = cfg.URL
		}
		return utils.CollapseSlashes(base + remoteMockPath)
	}
	if s.host == nil {
		return ""
	}
	return s.host.GetMockURL()
}

// BuildAPIURL returns the mock endpoint of api on the active data source.
func (s *RemoteService) BuildAPIURL(api models.ApiData) string {
	out, err := utils.BuildMockAPIURL(s.MockURL(), api.URI, api.UUID)
	if err != nil {
		s.log.Warning(fmt.Sprintf("remote: build api url for %s: %v", api.UUID, err))
		return utils.JoinURL(s.MockURL(), api.URI)
	}
	s.log.Debug("remote: api url " + out)
	return out
}

// ProbeRemote checks <url>/system/status once with client. There is no
// retry and no timeout beyond what client enforces.
func ProbeRemote(ctx context.Context, client *http.Client, cfg *models.RemoteServerConfig) PingResult {
	if cfg == nil || strings.TrimSpace(cfg.URL) == "" {
		return PingResult{Err: ErrConfigMissing}
	}
	if client == nil {
		client = http.DefaultClient
	}

	endpoint := utils.CollapseSlashes(cfg.URL + statusPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return PingResult{Detail: err, Err: fmt.Errorf("%w: %w", ErrNetworkFailure, err)}
	}
	req.Header.Set(apiKeyHeader, cfg.Token)

	resp, err := client.Do(req)
	if err != nil {
		return PingResult{Detail: err, Err: fmt.Errorf("%w: %w", ErrNetworkFailure, err)}
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return PingResult{Detail: err, Err: fmt.Errorf("%w: decode status: %w", ErrNetworkFailure, err)}
	}

	code, ok := body["statusCode"].(float64)
	if !ok || code != healthyStatus {
		return PingResult{Detail: body, Err: ErrUnhealthyRemote}
	}
	return PingResult{OK: true, Body: body}
}

func (s *RemoteService) probe(ctx context.Context, cfg *models.RemoteServerConfig) PingResult {
	return ProbeRemote(ctx, s.client, cfg)
}

// PingRemoteServer probes the configured remote server; bound for the
// settings page.
func (s *RemoteService) PingRemoteServer() bool {
	cfg, err := s.settings.RemoteServer()
	if err != nil {
		s.log.Warning(fmt.Sprintf("remote: read remote server settings: %v", err))
		return false
	}
	return s.probe(s.ctx(), cfg).OK
}

// SwitchDataSource flips between local and remote. Failures are reported
// to the user and never returned; concurrent calls share one switch.
func (s *RemoteService) SwitchDataSource() {
	s.switchDataSource(s.ctx())
}

func (s *RemoteService) switchDataSource(ctx context.Context) models.DataSourceMode {
	// an in-flight switch is never aborted
	ctx = context.WithoutCancel(ctx)
	v, _, _ := s.flight.Do("switch", func() (any, error) {
		return s.doSwitch(ctx), nil
	})
	return v.(models.DataSourceMode)
}

func (s *RemoteService) doSwitch(ctx context.Context) models.DataSourceMode {
	if s.IsRemote() {
		s.setShowTip(true)
		if err := s.activate(models.DataSourceLocal); err != nil {
			s.log.Error(fmt.Sprintf("remote: switch to local: %v", err))
			s.notifier.Create(events.EventError, s.texts.SwitchFailed(models.DataSourceLocal))
			s.setShowTip(false)
		}
		return s.DataSourceType()
	}

	cfg, err := s.settings.RemoteServer()
	if err != nil {
		s.log.Warning(fmt.Sprintf("remote: read remote server settings: %v", err))
	}
	result := s.probe(ctx, cfg)
	if !result.OK {
		s.log.Warning(fmt.Sprintf("remote: switch to remote failed: %v", result.Err))
		s.notifier.Create(events.EventError, s.texts.RemoteUnavailable())
		s.setShowTip(false)
		return s.DataSourceType()
	}

	s.setShowTip(true)
	if err := s.activate(models.DataSourceRemote); err != nil {
		s.log.Error(fmt.Sprintf("remote: switch to remote: %v", err))
		s.notifier.Create(events.EventError, s.texts.SwitchFailed(models.DataSourceRemote))
		s.setShowTip(false)
	}
	return s.DataSourceType()
}

func (s *RemoteService) activate(mode models.DataSourceMode) error {
	if err := s.store.ToggleDataSource(mode); err != nil {
		return err
	}
	s.setMode(mode)
	if s.router != nil {
		if err := s.router.Refresh(); err != nil {
			s.log.Warning(fmt.Sprintf("remote: refresh view: %v", err))
		}
	}
	return nil
}

func (s *RemoteService) setShowTip(show bool) {
	if err := s.store.SetShowTip(show); err != nil {
		s.log.Warning(fmt.Sprintf("remote: persist tip flag: %v", err))
	}
}

// OnExternalModeChange applies a mode change announced on the message bus
// and shows the pending switch notification once.
func (s *RemoteService) OnExternalModeChange(mode models.DataSourceMode) {
	mode = models.ParseDataSourceMode(string(mode))
	s.setMode(mode)
	if !s.store.ShowTip() {
		return
	}
	s.notifier.Create(events.EventSuccess, s.texts.SwitchSucceeded(mode))
	s.setShowTip(false)
}
