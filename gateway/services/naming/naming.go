package naming

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/names"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/verifier"
)

const (
	UsersDomain = "usuarios.cfp"
	CallsDomain = "llamados.cfp"

	DescriptionKey = "description"

	maxNameLength = 255

	// MaxResolveAddresses bounds a single reverse lookup batch.
	MaxResolveAddresses  = 100
	maxConcurrentLookups = 8
)

var labelRe = regexp.MustCompile(`^[a-z0-9-]+$`)

// ValidateLabel checks a single label registered under one of the gateway domains.
func ValidateLabel(label string) error {
	if !labelRe.MatchString(label) {
		return types.NewError(types.MalformedInput, types.MsgInvalidName)
	}
	return nil
}

func validateName(name string) error {
	if name == "" || len(name) > maxNameLength {
		return types.NewError(types.MalformedInput, types.MsgInvalidName)
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			return types.NewError(types.MalformedInput, types.MsgInvalidName)
		}
	}
	return nil
}

type NamingService interface {
	RegisterUserName(ctx context.Context, dto *dto.RegisterUserNameDTO) (*types.NameRegistration, error)
	RegisterCallName(ctx context.Context, dto *dto.RegisterCallNameDTO) (*types.NameRegistration, error)
	ResolveName(ctx context.Context, dto *dto.NameDTO) (*types.NameResolution, error)
	ResolveAddress(ctx context.Context, dto *dto.AddressDTO) (*types.AddressResolution, error)
	ResolveAddresses(ctx context.Context, dto *dto.AddressesDTO) (map[string]*string, error)
	NameInfo(ctx context.Context, dto *dto.NameDTO) (*types.NameInfo, error)
	IsNameAvailable(ctx context.Context, dto *dto.NameDTO) (*types.NameAvailability, error)
	RegisteredNames(dto *dto.DomainDTO) ([]*types.RegisteredName, error)
}

type BaseNamingService struct {
	ledger    ledger.Ledger
	namesRepo names.NamesRepo
	txService transactions.TransactionService
	logger    logger.Logger
	now       func() time.Time
}

func NewNamingService(
	l ledger.Ledger,
	namesRepo names.NamesRepo,
	txService transactions.TransactionService,
	log logger.Logger,
	now func() time.Time,
) *BaseNamingService {
	return &BaseNamingService{
		ledger:    l,
		namesRepo: namesRepo,
		txService: txService,
		logger:    log,
		now:       now,
	}
}

func (s *BaseNamingService) RegisterUserName(ctx context.Context, dto *dto.RegisterUserNameDTO) (*types.NameRegistration, error) {
	result, err := s.register(ctx, s.ledger.UsersRegistrar(), UsersDomain, dto.UserName, dto.UserAddress, dto.Description)
	if err != nil {
		return nil, err
	}
	result.Message = types.MsgUserNameRegistered
	return result, nil
}

func (s *BaseNamingService) RegisterCallName(ctx context.Context, dto *dto.RegisterCallNameDTO) (*types.NameRegistration, error) {
	result, err := s.register(ctx, s.ledger.CallsRegistrar(), CallsDomain, dto.CallName, dto.CallAddress, dto.Description)
	if err != nil {
		return nil, err
	}
	result.Message = types.MsgCallNameRegistered
	return result, nil
}

// register claims label under domain for the operator, points it to target and
// sets the reverse record of target. Writes are not undone when a later one fails.
func (s *BaseNamingService) register(
	ctx context.Context,
	registrar ledger.Registrar,
	domain, label, target, description string,
) (*types.NameRegistration, error) {
	if err := ValidateLabel(label); err != nil {
		return nil, err
	}
	if !verifier.IsValidAddress(target) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
	}

	fullName := label + "." + domain
	node := ledger.NameHash(fullName)
	targetAddr := common.HexToAddress(target)

	registry := s.ledger.Registry()
	owner, err := registry.Owner(ctx, node)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if owner != ledger.ZeroAddress {
		return nil, types.NewError(types.AlreadyRegistered, types.MsgNameRegistered)
	}

	resolver := s.ledger.PublicResolver()
	reverse := s.ledger.ReverseRegistrar()
	operator := s.ledger.OperatorAddress()

	steps := []transactions.Write{
		{
			Kind: types.TxRegisterName,
			Send: func(ctx context.Context) (ledger.PendingTx, error) {
				return registrar.Register(ctx, ledger.LabelHash(label), operator)
			},
		},
		{
			Kind: types.TxSetResolver,
			Send: func(ctx context.Context) (ledger.PendingTx, error) {
				return registry.SetResolver(ctx, node, resolver.Address())
			},
		},
		{
			Kind: types.TxSetAddr,
			Send: func(ctx context.Context) (ledger.PendingTx, error) {
				return resolver.SetAddr(ctx, node, targetAddr)
			},
		},
	}
	if description != "" {
		steps = append(steps, transactions.Write{
			Kind: types.TxSetText,
			Send: func(ctx context.Context) (ledger.PendingTx, error) {
				return resolver.SetText(ctx, node, DescriptionKey, description)
			},
		})
	}
	steps = append(steps, transactions.Write{
		Kind: types.TxSetReverseName,
		Send: func(ctx context.Context) (ledger.PendingTx, error) {
			return reverse.SetNameForAddress(ctx, targetAddr, fullName)
		},
	})

	var first *ledger.Receipt
	for _, step := range steps {
		step.Subject = fullName
		receipt, err := s.txService.Submit(ctx, step)
		if err != nil {
			s.logger.Error("Failed to register %s at step %s: %v", fullName, step.Kind, err)
			return nil, types.WrapError(types.Internal, types.MsgENSRegistrationError, err)
		}
		if first == nil {
			first = receipt
		}
	}

	if err := s.namesRepo.PutName(&types.RegisteredName{
		Name:         fullName,
		Domain:       domain,
		Address:      targetAddr.Hex(),
		RegisteredAt: s.now().UTC(),
	}); err != nil {
		s.logger.Error("Failed to save registered name %s: %v", fullName, err)
	}
	s.logger.Log("Registered %s -> %s", fullName, targetAddr.Hex())

	return &types.NameRegistration{
		Success:         true,
		Name:            fullName,
		Address:         targetAddr.Hex(),
		TransactionHash: first.TxHash.Hex(),
		BlockNumber:     first.BlockNumber,
	}, nil
}

func (s *BaseNamingService) ResolveName(ctx context.Context, dto *dto.NameDTO) (*types.NameResolution, error) {
	if err := validateName(dto.Name); err != nil {
		return nil, err
	}
	addr, err := s.resolveName(ctx, dto.Name)
	if err != nil {
		return nil, err
	}
	return &types.NameResolution{Name: dto.Name, Address: addr.Hex()}, nil
}

func (s *BaseNamingService) resolveName(ctx context.Context, name string) (common.Address, error) {
	node := ledger.NameHash(name)
	resolverAddr, err := s.ledger.Registry().Resolver(ctx, node)
	if err != nil {
		return common.Address{}, types.NewInternalError(err)
	}
	if resolverAddr == ledger.ZeroAddress {
		return common.Address{}, types.NewError(types.NotFound, types.MsgNameNotFound)
	}

	addr, err := s.ledger.ResolverAt(resolverAddr).Addr(ctx, node)
	if err != nil {
		return common.Address{}, types.NewInternalError(err)
	}
	if addr == ledger.ZeroAddress {
		return common.Address{}, types.NewError(types.NotFound, types.MsgNameNotFound)
	}
	return addr, nil
}

func (s *BaseNamingService) ResolveAddress(ctx context.Context, dto *dto.AddressDTO) (*types.AddressResolution, error) {
	if !verifier.IsValidAddress(dto.Address) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
	}
	addr := common.HexToAddress(dto.Address)
	name, err := s.resolveAddress(ctx, addr)
	if err != nil {
		return nil, err
	}
	return &types.AddressResolution{Address: addr.Hex(), Name: name}, nil
}

func (s *BaseNamingService) resolveAddress(ctx context.Context, addr common.Address) (string, error) {
	reverseNode, err := s.ledger.ReverseRegistrar().Node(ctx, addr)
	if err != nil {
		return "", types.NewInternalError(err)
	}
	resolverAddr, err := s.ledger.Registry().Resolver(ctx, reverseNode)
	if err != nil {
		return "", types.NewInternalError(err)
	}
	if resolverAddr == ledger.ZeroAddress {
		return "", types.NewError(types.NotFound, types.MsgAddressNotFound)
	}

	name, err := s.ledger.ResolverAt(resolverAddr).Name(ctx, reverseNode)
	if err != nil {
		return "", types.NewInternalError(err)
	}
	if name == "" {
		return "", types.NewError(types.NotFound, types.MsgAddressNotFound)
	}
	return name, nil
}

// ResolveAddresses looks up the reverse name of every address, at most
// maxConcurrentLookups at a time. An address that cannot be resolved maps to nil.
func (s *BaseNamingService) ResolveAddresses(ctx context.Context, dto *dto.AddressesDTO) (map[string]*string, error) {
	if len(dto.Addresses) > MaxResolveAddresses {
		return nil, types.NewError(types.MalformedInput, types.MsgTooManyAddresses)
	}
	for _, a := range dto.Addresses {
		if !verifier.IsValidAddress(a) {
			return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
		}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		sem     = make(chan struct{}, maxConcurrentLookups)
		results = make(map[string]*string, len(dto.Addresses))
	)
	for _, a := range dto.Addresses {
		wg.Add(1)
		sem <- struct{}{}
		go func(a string) {
			defer func() {
				<-sem
				wg.Done()
			}()
			var resolved *string
			name, err := s.resolveAddress(ctx, common.HexToAddress(a))
			if err == nil {
				resolved = &name
			} else if !types.IsKind(err, types.NotFound) {
				s.logger.Error("Failed to resolve %s: %v", a, err)
			}
			mu.Lock()
			results[a] = resolved
			mu.Unlock()
		}(a)
	}
	wg.Wait()

	return results, nil
}

func (s *BaseNamingService) NameInfo(ctx context.Context, dto *dto.NameDTO) (*types.NameInfo, error) {
	if err := validateName(dto.Name); err != nil {
		return nil, err
	}

	node := ledger.NameHash(dto.Name)
	resolverAddr, err := s.ledger.Registry().Resolver(ctx, node)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if resolverAddr == ledger.ZeroAddress {
		return nil, types.NewError(types.NotFound, types.MsgNameNotFound)
	}

	resolver := s.ledger.ResolverAt(resolverAddr)
	addr, err := resolver.Addr(ctx, node)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	description, err := resolver.Text(ctx, node, DescriptionKey)
	if err != nil {
		return nil, types.NewInternalError(err)
	}

	info := &types.NameInfo{
		Name:        dto.Name,
		Address:     addr.Hex(),
		Description: description,
	}
	if addr != ledger.ZeroAddress {
		reverseName, err := s.resolveAddress(ctx, addr)
		switch {
		case err == nil:
			info.ReverseName = reverseName
		case !types.IsKind(err, types.NotFound):
			return nil, err
		}
	}
	return info, nil
}

func (s *BaseNamingService) IsNameAvailable(ctx context.Context, dto *dto.NameDTO) (*types.NameAvailability, error) {
	if err := validateName(dto.Name); err != nil {
		return nil, err
	}
	owner, err := s.ledger.Registry().Owner(ctx, ledger.NameHash(dto.Name))
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	return &types.NameAvailability{
		Name:      dto.Name,
		Available: owner == ledger.ZeroAddress,
	}, nil
}

// RegisteredNames lists the names registered through this gateway under domain.
func (s *BaseNamingService) RegisteredNames(dto *dto.DomainDTO) ([]*types.RegisteredName, error) {
	if dto.Domain != UsersDomain && dto.Domain != CallsDomain {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidDomain)
	}
	registered, err := s.namesRepo.GetNames(dto.Domain)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	return registered, nil
}
