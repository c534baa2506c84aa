package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/Eveneto/sistema-crm-simples-sub001/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const generationKey = "generation"

// ResultCache guarda relatórios prontos por tenant, endpoint e parâmetros.
// Cada tenant tem uma geração; invalidar troca a geração e as entradas antigas expiram pelo TTL.
type ResultCache interface {
	Load(ctx context.Context, tenantID, endpoint, params string, dst any) (bool, error)
	Save(ctx context.Context, tenantID, endpoint, params string, value any) error
	Invalidate(ctx context.Context, tenantID string) error
}

type resultCache struct {
	store  Store
	prefix string
	ttl    time.Duration
	newGen func() (string, error)
}

func NewResultCache(store Store, prefix string, ttl time.Duration) ResultCache {
	return &resultCache{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
		newGen: utils.GenerateID,
	}
}

func (c *resultCache) Load(ctx context.Context, tenantID, endpoint, params string, dst any) (bool, error) {
	generation, err := c.generation(ctx, tenantID)
	if err != nil {
		return false, err
	}

	raw, err := c.store.Get(ctx, Key(c.prefix, tenantID, generation, endpoint, params))
	if errors.Is(err, ErrMiss) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("erro ao ler cache de %s: %w", endpoint, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("erro ao decodificar cache de %s: %w", endpoint, err)
	}

	return true, nil
}

func (c *resultCache) Save(ctx context.Context, tenantID, endpoint, params string, value any) error {
	generation, err := c.generation(ctx, tenantID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("erro ao codificar cache de %s: %w", endpoint, err)
	}

	return c.store.Set(ctx, Key(c.prefix, tenantID, generation, endpoint, params), raw, c.ttl)
}

func (c *resultCache) Invalidate(ctx context.Context, tenantID string) error {
	generation, err := c.newGen()
	if err != nil {
		return fmt.Errorf("erro ao gerar nova geração do cache: %w", err)
	}

	if err := c.store.Set(ctx, Key(c.prefix, tenantID, generationKey), []byte(generation), 0); err != nil {
		return fmt.Errorf("erro ao invalidar cache do tenant %s: %w", tenantID, err)
	}

	return nil
}

// generation devolve a geração atual do tenant, criando uma se ainda não existir
func (c *resultCache) generation(ctx context.Context, tenantID string) (string, error) {
	key := Key(c.prefix, tenantID, generationKey)

	raw, err := c.store.Get(ctx, key)
	if err == nil {
		return string(raw), nil
	}
	if !errors.Is(err, ErrMiss) {
		return "", fmt.Errorf("erro ao ler geração do cache: %w", err)
	}

	generation, err := c.newGen()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar geração do cache: %w", err)
	}

	if err := c.store.Set(ctx, key, []byte(generation), 0); err != nil {
		return "", fmt.Errorf("erro ao gravar geração do cache: %w", err)
	}

	return generation, nil
}
