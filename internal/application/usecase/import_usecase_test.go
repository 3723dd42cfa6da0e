package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmbientalSC/licencas/internal/domain/entity"
)

// filialRepoLento sinaliza quando ListAll entra e só devolve depois de
// liberado, prendendo a importação no meio da carga do snapshot.
type filialRepoLento struct {
	entrou chan struct{}
	libera chan struct{}
}

func (r *filialRepoLento) Create(*entity.Filial) error             { return nil }
func (r *filialRepoLento) GetByID(string) (*entity.Filial, error)  { return nil, nil }
func (r *filialRepoLento) Update(*entity.Filial) error             { return nil }
func (r *filialRepoLento) List(int, int) ([]*entity.Filial, error) { return nil, nil }
func (r *filialRepoLento) Delete(string) error                     { return nil }
func (r *filialRepoLento) ListAll() ([]*entity.Filial, error) {
	close(r.entrou)
	<-r.libera
	return nil, nil
}

type laoRepoVazio struct{}

func (laoRepoVazio) Create(*entity.Lao) error                 { return nil }
func (laoRepoVazio) GetByID(string) (*entity.Lao, error)      { return nil, nil }
func (laoRepoVazio) Update(*entity.Lao) error                 { return nil }
func (laoRepoVazio) SetAtivo(string, bool) error              { return nil }
func (laoRepoVazio) List(bool, int, int) ([]*entity.Lao, error) {
	return nil, nil
}
func (laoRepoVazio) ListAll() ([]*entity.Lao, error) { return nil, nil }
func (laoRepoVazio) Delete(string) error             { return nil }

type condRepoVazio struct{}

func (condRepoVazio) Create(*entity.Condicionante) error            { return nil }
func (condRepoVazio) GetByID(string) (*entity.Condicionante, error) { return nil, nil }
func (condRepoVazio) Update(*entity.Condicionante) error            { return nil }
func (condRepoVazio) ListByLao(string) ([]*entity.Condicionante, error) {
	return nil, nil
}
func (condRepoVazio) ListAll() ([]*entity.Condicionante, error) { return nil, nil }
func (condRepoVazio) Delete(string) error                       { return nil }

type vistRepoVazio struct{}

func (vistRepoVazio) Create(*entity.Vistoria) error { return nil }
func (vistRepoVazio) GetByCondicionanteEData(string, time.Time) (*entity.Vistoria, error) {
	return nil, nil
}
func (vistRepoVazio) ListByCondicionante(string) ([]*entity.Vistoria, error) {
	return nil, nil
}
func (vistRepoVazio) ListByLao(string) ([]*entity.Vistoria, error) { return nil, nil }
func (vistRepoVazio) ListAll() ([]*entity.Vistoria, error)         { return nil, nil }
func (vistRepoVazio) Delete(string) error                          { return nil }

type escritorNulo struct{}

func (escritorNulo) AddLao(*entity.Lao) (string, error)                     { return "", nil }
func (escritorNulo) UpdateLao(*entity.Lao) error                            { return nil }
func (escritorNulo) DeleteLao(string) error                                 { return nil }
func (escritorNulo) AddCondicionante(*entity.Condicionante) (string, error) { return "", nil }
func (escritorNulo) UpdateCondicionante(*entity.Condicionante) error        { return nil }
func (escritorNulo) DeleteCondicionante(string) error                       { return nil }
func (escritorNulo) AddVistoria(*entity.Vistoria) (string, error)           { return "", nil }

// Uma importação por vez: enquanto uma execução está entre o snapshot e a
// guarda do resumo, o mutex permanece tomado e nenhuma outra entra.
func TestImportUseCase_ExecucoesSerializadas(t *testing.T) {
	filiais := &filialRepoLento{entrou: make(chan struct{}), libera: make(chan struct{})}
	uc := NewImportUseCase(filiais, laoRepoVazio{}, condRepoVazio{}, vistRepoVazio{}, escritorNulo{}, nil)

	done := make(chan struct{})
	go func() {
		_, _ = uc.Executar([]byte("conteúdo inválido: vira erro de parser, não aborta"))
		close(done)
	}()

	<-filiais.entrou
	assert.False(t, uc.mu.TryLock(), "execução em andamento deve reter o mutex")

	close(filiais.libera)
	<-done

	require.True(t, uc.mu.TryLock())
	uc.mu.Unlock()

	resumo := uc.UltimoResumo()
	require.NotNil(t, resumo)
	assert.NotEmpty(t, resumo.ErrosParser)
}
