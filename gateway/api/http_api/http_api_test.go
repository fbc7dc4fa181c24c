package http_api

import (
	"bytes"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/gateway/config"
	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/services"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger/ledgertest"
	"github.com/lidofinance/cfp-gateway/verifier"
)

var (
	operator        = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	errIntermittent = errors.New("connection reset by peer")
)

type response struct {
	Result       json.RawMessage `json:"result"`
	ErrorMessage string          `json:"error_message"`
}

type gateway struct {
	t      *testing.T
	server *RESTApiProvider
	ledger *ledgertest.Ledger

	mu  sync.Mutex
	now time.Time
}

func newGateway(t *testing.T) *gateway {
	g := &gateway{t: t, now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	g.ledger = ledgertest.NewLedger(operator, ledgertest.WithClock(g.clock))

	st, err := state.NewLevelDBState(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cfg := &config.Config{CFPCacheSize: 16}

	sp := &services.ServiceProvider{}
	sp.SetLedger(g.ledger)
	sp.SetState(st)
	sp.SetClock(g.clock)
	require.NoError(t, services.InitServices(cfg, sp))

	g.server = &RESTApiProvider{}
	require.NoError(t, g.server.NewServer(cfg, sp))
	return g
}

func (g *gateway) clock() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.now
}

func (g *gateway) advance(d time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.now = g.now.Add(d)
}

func (g *gateway) do(method, path string, body interface{}) (int, response) {
	var reader *bytes.Reader
	if body != nil {
		bz, err := json.Marshal(body)
		require.NoError(g.t, err)
		reader = bytes.NewReader(bz)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	g.server.echoInstance.ServeHTTP(rec, req)

	var resp response
	require.NoError(g.t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func (g *gateway) decode(resp response, v interface{}) {
	require.NoError(g.t, json.Unmarshal(resp.Result, v))
}

func sign(t *testing.T, key *ecdsa.PrivateKey, message []byte) string {
	sig, err := verifier.Sign(message, func(hash []byte) ([]byte, error) {
		return crypto.Sign(hash, key)
	})
	require.NoError(t, err)
	return sig
}

func newKey(t *testing.T) (*ecdsa.PrivateKey, common.Address) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, crypto.PubkeyToAddress(key.PublicKey)
}

func okMessage(g *gateway, resp response) string {
	var result types.MessageResult
	g.decode(resp, &result)
	return result.Message
}

// Registering twice with the same payload authorizes once.
func TestScenarioA_Register(t *testing.T) {
	g := newGateway(t)
	key, account := newKey(t)

	payload := map[string]string{
		"address":   strings.ToLower(account.Hex()),
		"signature": sign(t, key, verifier.RegistrationMessage(ledgertest.FactoryAddress)),
	}

	code, resp := g.do(http.MethodPost, "/register", payload)
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)
	require.Equal(t, types.MsgOK, okMessage(g, resp))

	code, resp = g.do(http.MethodPost, "/register", payload)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgAlreadyAuthorized, resp.ErrorMessage)

	code, resp = g.do(http.MethodGet, "/authorized/"+account.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	var authorized types.AuthorizedResult
	g.decode(resp, &authorized)
	require.True(t, authorized.Authorized)

	code, resp = g.do(http.MethodGet, "/transactions", nil)
	require.Equal(t, http.StatusOK, code)
	var txs []*types.Transaction
	g.decode(resp, &txs)
	require.Len(t, txs, 1)
	require.Equal(t, types.TxAuthorize, txs[0].Kind)
	require.Equal(t, types.TxSuccess, txs[0].Status)
}

func TestRegister_BadInput(t *testing.T) {
	g := newGateway(t)
	key, account := newKey(t)
	other, _ := newKey(t)

	code, resp := g.do(http.MethodPost, "/register", map[string]string{
		"address":   "0x1234",
		"signature": sign(t, key, verifier.RegistrationMessage(ledgertest.FactoryAddress)),
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, types.MsgInvalidAddress, resp.ErrorMessage)

	code, resp = g.do(http.MethodPost, "/register", map[string]string{
		"address":   account.Hex(),
		"signature": sign(t, other, verifier.RegistrationMessage(ledgertest.FactoryAddress)),
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, types.MsgInvalidSignature, resp.ErrorMessage)

	// bound to another contract
	code, _ = g.do(http.MethodPost, "/register", map[string]string{
		"address":   account.Hex(),
		"signature": sign(t, key, verifier.RegistrationMessage(ledgertest.RegistryAddress)),
	})
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = g.do(http.MethodPost, "/register", map[string]string{"address": account.Hex()})
	require.Equal(t, http.StatusBadRequest, code)
}

func createCall(g *gateway, key *ecdsa.PrivateKey, callID common.Hash, closingTime string) (int, response) {
	return g.do(http.MethodPost, "/create", map[string]string{
		"callId":      callID.Hex(),
		"closingTime": closingTime,
		"signature":   sign(g.t, key, verifier.CallCreationMessage(ledgertest.FactoryAddress, callID)),
	})
}

// An authorized creator opens a call and can read it back.
func TestScenarioB_CreateCall(t *testing.T) {
	g := newGateway(t)
	key, creator := newKey(t)
	g.ledger.Authorize(creator)

	callID := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	code, resp := createCall(g, key, callID, g.clock().Add(time.Hour).Format(time.RFC3339))
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)
	require.Equal(t, types.MsgOK, okMessage(g, resp))

	code, resp = g.do(http.MethodGet, "/calls/"+callID.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	var record types.CallRecord
	g.decode(resp, &record)
	require.Equal(t, creator.Hex(), record.Creator)
	require.NotEqual(t, common.Address{}.Hex(), record.CFP)

	code, resp = g.do(http.MethodGet, "/closing-time/"+callID.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	var closing types.ClosingTimeResult
	g.decode(resp, &closing)
	require.Equal(t, "2024-05-10T13:00:00.000Z", closing.ClosingTime)

	code, resp = g.do(http.MethodGet, "/calls", nil)
	require.Equal(t, http.StatusOK, code)
	var calls []*types.CallInfo
	g.decode(resp, &calls)
	require.Len(t, calls, 1)
	require.Equal(t, record.CFP, calls[0].CFP)

	code, resp = createCall(g, key, callID, g.clock().Add(time.Hour).Format(time.RFC3339))
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgAlreadyCreated, resp.ErrorMessage)

	code, resp = g.do(http.MethodGet, "/calls/"+common.HexToHash("0x22").Hex(), nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, types.MsgCallIDNotFound, resp.ErrorMessage)

	code, _ = g.do(http.MethodGet, "/calls/0x11", nil)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestCreateCall_ClosingTimeBoundary(t *testing.T) {
	g := newGateway(t)
	key, creator := newKey(t)
	g.ledger.Authorize(creator)

	first := common.HexToHash("0x01")
	code, resp := createCall(g, key, first, g.clock().Format(time.RFC3339))
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgInvalidClosingTime, resp.ErrorMessage)

	code, resp = createCall(g, key, first, g.clock().Add(time.Second).Format(time.RFC3339))
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)

	code, resp = createCall(g, key, common.HexToHash("0x02"), "mañana")
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, types.MsgClosingTimeFormat, resp.ErrorMessage)
}

func TestCreateCall_Unauthorized(t *testing.T) {
	g := newGateway(t)
	key, _ := newKey(t)

	code, resp := createCall(g, key, common.HexToHash("0x01"), g.clock().Add(time.Hour).Format(time.RFC3339))
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgUnauthorized, resp.ErrorMessage)
}

func openCall(g *gateway) common.Hash {
	key, creator := newKey(g.t)
	g.ledger.Authorize(creator)

	callID := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	code, resp := createCall(g, key, callID, g.clock().Add(time.Hour).Format(time.RFC3339))
	require.Equal(g.t, http.StatusOK, code, resp.ErrorMessage)
	return callID
}

// A closed call rejects every proposal, registered before or not.
func TestScenarioC_ClosedCall(t *testing.T) {
	g := newGateway(t)
	callID := openCall(g)

	registered := crypto.Keccak256Hash([]byte("propuesta 1"))
	fresh := crypto.Keccak256Hash([]byte("propuesta 2"))

	code, resp := g.do(http.MethodPost, "/register-proposal", map[string]string{
		"callId": callID.Hex(), "proposal": registered.Hex(),
	})
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)

	g.advance(time.Hour)

	for _, proposal := range []common.Hash{registered, fresh} {
		code, resp = g.do(http.MethodPost, "/register-proposal", map[string]string{
			"callId": callID.Hex(), "proposal": proposal.Hex(),
		})
		require.Equal(t, http.StatusForbidden, code)
		require.Equal(t, types.MsgCallClosed, resp.ErrorMessage)
	}
}

// The same proposal can be registered only once.
func TestScenarioD_DuplicateProposal(t *testing.T) {
	g := newGateway(t)
	callID := openCall(g)
	proposal := crypto.Keccak256Hash([]byte("propuesta"))

	payload := map[string]string{"callId": callID.Hex(), "proposal": proposal.Hex()}

	code, resp := g.do(http.MethodPost, "/register-proposal", payload)
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)

	code, resp = g.do(http.MethodPost, "/register-proposal", payload)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgProposalRegistered, resp.ErrorMessage)

	code, resp = g.do(http.MethodGet, "/proposal-data/"+callID.Hex()+"/"+proposal.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	var data types.ProposalData
	g.decode(resp, &data)
	require.Equal(t, operator.Hex(), data.Sender)

	code, resp = g.do(http.MethodGet, "/proposal-counts?callIds="+callID.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	var counts types.ProposalCounts
	g.decode(resp, &counts)
	require.Equal(t, uint64(1), counts[callID.Hex()])

	code, resp = g.do(http.MethodGet, "/proposal-data/"+callID.Hex()+"/"+crypto.Keccak256Hash([]byte("otra")).Hex(), nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, types.MsgProposalNotFound, resp.ErrorMessage)
}

func TestRegisterProposalWithSignature(t *testing.T) {
	g := newGateway(t)
	callID := openCall(g)
	key, signer := newKey(t)
	proposal := crypto.Keccak256Hash([]byte("propuesta firmada"))

	code, resp := g.do(http.MethodPost, "/register-proposal-with-signature", map[string]string{
		"callId":    callID.Hex(),
		"proposal":  proposal.Hex(),
		"signature": sign(t, key, verifier.ProposalMessage(proposal)),
		"signer":    signer.Hex(),
	})
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)

	// bound to the proposal hash only
	other := crypto.Keccak256Hash([]byte("otra"))
	code, resp = g.do(http.MethodPost, "/register-proposal-with-signature", map[string]string{
		"callId":    callID.Hex(),
		"proposal":  other.Hex(),
		"signature": sign(t, key, verifier.ProposalMessage(proposal)),
		"signer":    signer.Hex(),
	})
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, types.MsgInvalidSignature, resp.ErrorMessage)
}

func TestCreateCallWithENS(t *testing.T) {
	g := newGateway(t)
	key, creator := newKey(t)
	g.ledger.Authorize(creator)

	create := func(callID common.Hash, name string) types.CallCreationResult {
		code, resp := g.do(http.MethodPost, "/create-with-ens", map[string]string{
			"callId":      callID.Hex(),
			"closingTime": g.clock().Add(time.Hour).Format(time.RFC3339),
			"signature":   sign(t, key, verifier.CallCreationMessage(ledgertest.FactoryAddress, callID)),
			"callName":    name,
			"description": "Convocatoria de prueba",
		})
		require.Equal(t, http.StatusOK, code, resp.ErrorMessage)
		var result types.CallCreationResult
		g.decode(resp, &result)
		return result
	}

	result := create(common.HexToHash("0x01"), "convocatoria")
	require.True(t, result.CallCreated)
	require.True(t, result.ENSRegistered)
	require.Equal(t, "convocatoria.llamados.cfp", result.Name)

	code, resp := g.do(http.MethodGet, "/ens/resolve-name/convocatoria.llamados.cfp", nil)
	require.Equal(t, http.StatusOK, code)
	var resolved types.NameResolution
	g.decode(resp, &resolved)
	require.Equal(t, result.CFPAddress, resolved.Address)

	// the second call exists even though its name was taken
	result = create(common.HexToHash("0x02"), "convocatoria")
	require.True(t, result.CallCreated)
	require.False(t, result.ENSRegistered)
	require.Equal(t, types.MsgNameRegistered, result.Reason)

	code, _ = g.do(http.MethodGet, "/calls/"+common.HexToHash("0x02").Hex(), nil)
	require.Equal(t, http.StatusOK, code)

	g.ledger.FailNext("setAddr", errIntermittent)
	result = create(common.HexToHash("0x03"), "otra-convocatoria")
	require.True(t, result.CallCreated)
	require.False(t, result.ENSRegistered)
	require.Equal(t, types.MsgENSRegistrationError, result.Reason)
}

func TestENS(t *testing.T) {
	g := newGateway(t)
	_, alice := newKey(t)
	_, bob := newKey(t)

	code, resp := g.do(http.MethodPost, "/ens/register-user", map[string]string{
		"userName": "alice", "userAddress": alice.Hex(), "description": "Investigadora",
	})
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)
	var registration types.NameRegistration
	g.decode(resp, &registration)
	require.Equal(t, types.MsgUserNameRegistered, registration.Message)

	code, resp = g.do(http.MethodPost, "/ens/register-user", map[string]string{
		"userName": "alice", "userAddress": bob.Hex(),
	})
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgNameRegistered, resp.ErrorMessage)

	code, resp = g.do(http.MethodGet, "/ens/resolve-address/"+alice.Hex(), nil)
	require.Equal(t, http.StatusOK, code)
	var reverse types.AddressResolution
	g.decode(resp, &reverse)
	require.Equal(t, "alice.usuarios.cfp", reverse.Name)

	code, resp = g.do(http.MethodGet, "/ens/resolve-address/"+bob.Hex(), nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, types.MsgAddressNotFound, resp.ErrorMessage)

	code, resp = g.do(http.MethodPost, "/ens/resolve-addresses", map[string][]string{
		"addresses": {alice.Hex(), bob.Hex()},
	})
	require.Equal(t, http.StatusOK, code)
	var names map[string]*string
	g.decode(resp, &names)
	require.Equal(t, "alice.usuarios.cfp", *names[alice.Hex()])
	require.Nil(t, names[bob.Hex()])

	code, resp = g.do(http.MethodGet, "/ens/name-info/alice.usuarios.cfp", nil)
	require.Equal(t, http.StatusOK, code)
	var info types.NameInfo
	g.decode(resp, &info)
	require.Equal(t, "Investigadora", info.Description)

	code, resp = g.do(http.MethodGet, "/ens/check-availability/bob.usuarios.cfp", nil)
	require.Equal(t, http.StatusOK, code)
	var availability types.NameAvailability
	g.decode(resp, &availability)
	require.True(t, availability.Available)

	code, resp = g.do(http.MethodGet, "/ens/registered-names?domain=usuarios.cfp", nil)
	require.Equal(t, http.StatusOK, code)
	var registered []*types.RegisteredName
	g.decode(resp, &registered)
	require.Len(t, registered, 1)

	code, _ = g.do(http.MethodGet, "/ens/resolve-name/nadie.usuarios.cfp", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestReadEndpoints(t *testing.T) {
	g := newGateway(t)

	code, resp := g.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, string(resp.Result), `"status":"ok"`)

	code, resp = g.do(http.MethodGet, "/contract-address", nil)
	require.Equal(t, http.StatusOK, code)
	var address types.AddressResult
	g.decode(resp, &address)
	require.Equal(t, ledgertest.FactoryAddress.Hex(), address.Address)

	code, resp = g.do(http.MethodGet, "/contract-owner", nil)
	require.Equal(t, http.StatusOK, code)
	g.decode(resp, &address)
	require.Equal(t, operator.Hex(), address.Address)

	code, resp = g.do(http.MethodGet, "/contracts/addresses", nil)
	require.Equal(t, http.StatusOK, code)
	var addresses types.ContractAddresses
	g.decode(resp, &addresses)
	require.Equal(t, ledgertest.UsersRegistrarAddress.Hex(), addresses.UsersRegistrar)

	code, _ = g.do(http.MethodGet, "/contracts/cfp/"+common.HexToHash("0x01").Hex(), nil)
	require.Equal(t, http.StatusNotFound, code)

	code, resp = g.do(http.MethodGet, "/transactions/missing", nil)
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, types.MsgTransactionNotFound, resp.ErrorMessage)

	code, _ = g.do(http.MethodGet, "/no-such-route", nil)
	require.Equal(t, http.StatusNotFound, code)
}

func TestAuthorizeAccount(t *testing.T) {
	g := newGateway(t)
	_, account := newKey(t)

	code, resp := g.do(http.MethodPost, "/authorize/"+account.Hex(), nil)
	require.Equal(t, http.StatusOK, code, resp.ErrorMessage)

	code, resp = g.do(http.MethodPost, "/authorize/"+account.Hex(), nil)
	require.Equal(t, http.StatusForbidden, code)
	require.Equal(t, types.MsgAlreadyAuthorized, resp.ErrorMessage)
}
