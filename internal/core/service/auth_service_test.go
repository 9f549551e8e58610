package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/sirene/bombeiros-api/internal/core/domain"
	"github.com/sirene/bombeiros-api/internal/core/ports"
	"github.com/sirene/bombeiros-api/internal/core/token"
)

func newTestAuthService(t *testing.T, repo *stubMilitarRepo, opts ...AuthOption) (*AuthService, *token.Codec) {
	t.Helper()
	codec, err := token.NewCodec(token.Config{Secret: "secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	opts = append([]AuthOption{WithBcryptCost(bcrypt.MinCost)}, opts...)
	return NewAuthService(repo, codec, zerolog.Nop(), opts...), codec
}

func createInput(matricula string) ports.CreateMilitarInput {
	return ports.CreateMilitarInput{
		Nome:         "Militar " + matricula,
		Matricula:    matricula,
		CPF:          "000.000.000-" + matricula,
		Posto:        "Cabo",
		Email:        matricula + "@bombeiros.gov.br",
		Senha:        "correct",
		PerfilAcesso: "militar",
	}
}

func TestAuthService_Login_TokenCarriesIdentity(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, codec := newTestAuthService(t, repo)

	in := createInput("12345")
	in.PerfilAcesso = "ADMIN"
	created, err := svc.CreateIdentity(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}

	res, err := svc.Login(context.Background(), "12345", "correct")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token == "" {
		t.Fatal("expected non-empty token")
	}
	if res.User.Nome != created.Nome || res.User.Cargo != domain.PerfilAdmin {
		t.Fatalf("unexpected user summary: %+v", res.User)
	}

	claims, err := codec.Verify(res.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ID != created.ID || claims.Matricula != "12345" || claims.Nome != created.Nome || claims.Cargo != domain.PerfilAdmin {
		t.Fatalf("claims do not match identity: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	_, _ = svc.CreateIdentity(context.Background(), createInput("12345"))

	_, err := svc.Login(context.Background(), "12345", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if err.Error() != "Matrícula ou senha inválida." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAuthService_Login_UnknownMatricula(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubMilitarRepo())

	if _, err := svc.Login(context.Background(), "99999", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubMilitarRepo())

	if _, err := svc.Login(context.Background(), " ", "x"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	repo := newStubMilitarRepo()
	repo.err = errors.New("connection refused")
	svc, _ := newTestAuthService(t, repo)

	_, err := svc.Login(context.Background(), "12345", "correct")
	if err == nil || errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestAuthService_CreateIdentity_HashesPassword(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)

	m, err := svc.CreateIdentity(context.Background(), createInput("100"))
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected generated id")
	}
	if m.SenhaHash == "correct" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.SenhaHash), []byte("correct")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
	if m.PerfilAcesso != domain.PerfilMilitar {
		t.Fatalf("expected MILITAR, got %s", m.PerfilAcesso)
	}
}

func TestAuthService_CreateIdentity_DefaultsPerfil(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubMilitarRepo())
	in := createInput("101")
	in.PerfilAcesso = ""

	m, err := svc.CreateIdentity(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	if m.PerfilAcesso != domain.PerfilMilitar {
		t.Fatalf("expected default MILITAR, got %s", m.PerfilAcesso)
	}
}

func TestAuthService_CreateIdentity_Validation(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubMilitarRepo())

	in := createInput("102")
	in.PerfilAcesso = "general"
	if _, err := svc.CreateIdentity(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for bad perfil, got %v", err)
	}

	in = createInput("103")
	in.Senha = ""
	if _, err := svc.CreateIdentity(context.Background(), in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty senha, got %v", err)
	}
}

func TestAuthService_CreateIdentity_DuplicateMatricula(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)

	if _, err := svc.CreateIdentity(context.Background(), createInput("200")); err != nil {
		t.Fatalf("first create: %v", err)
	}

	dup := createInput("200")
	dup.Email = "other@bombeiros.gov.br"
	dup.CPF = "111.111.111-11"
	if _, err := svc.CreateIdentity(context.Background(), dup); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected exactly one stored row, got %d", len(repo.byID))
	}
}

func TestAuthService_ListIdentities_Pagination(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	for i := 0; i < 25; i++ {
		if _, err := svc.CreateIdentity(context.Background(), createInput(fmt.Sprintf("%03d", i))); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	page, err := svc.ListIdentities(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("ListIdentities: %v", err)
	}
	if len(page.Items) != 10 || page.Total != 25 || page.TotalPages != 3 {
		t.Fatalf("unexpected page: items=%d total=%d pages=%d", len(page.Items), page.Total, page.TotalPages)
	}

	last, _ := svc.ListIdentities(context.Background(), 3, 10)
	if len(last.Items) != 5 {
		t.Fatalf("expected 5 items on last page, got %d", len(last.Items))
	}

	beyond, _ := svc.ListIdentities(context.Background(), 9, 10)
	if len(beyond.Items) != 0 || beyond.Total != 25 {
		t.Fatalf("expected empty page past the end, got %d items", len(beyond.Items))
	}
}

func TestAuthService_ListIdentities_ClampsBounds(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubMilitarRepo())

	page, err := svc.ListIdentities(context.Background(), 0, 1000)
	if err != nil {
		t.Fatalf("ListIdentities: %v", err)
	}
	if page.Page != 1 || page.Limit != maxPageSize {
		t.Fatalf("expected page=1 limit=%d, got page=%d limit=%d", maxPageSize, page.Page, page.Limit)
	}
	if page.Items == nil {
		t.Fatal("items must be an empty slice, not nil")
	}
}

func TestAuthService_GetIdentity_NotFound(t *testing.T) {
	svc, _ := newTestAuthService(t, newStubMilitarRepo())

	if _, err := svc.GetIdentity(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_UpdateIdentity_Partial(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	m, _ := svc.CreateIdentity(context.Background(), createInput("300"))

	posto := "Sargento"
	perfil := "comandante"
	updated, err := svc.UpdateIdentity(context.Background(), m.ID, ports.UpdateMilitarInput{Posto: &posto, PerfilAcesso: &perfil})
	if err != nil {
		t.Fatalf("UpdateIdentity: %v", err)
	}
	if updated.Posto != "Sargento" || updated.PerfilAcesso != domain.PerfilComandante {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if updated.Nome != m.Nome || updated.SenhaHash != m.SenhaHash {
		t.Fatal("untouched fields changed")
	}
}

func TestAuthService_UpdateIdentity_ChangesPassword(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	m, _ := svc.CreateIdentity(context.Background(), createInput("301"))

	senha := "nova-senha"
	if _, err := svc.UpdateIdentity(context.Background(), m.ID, ports.UpdateMilitarInput{Senha: &senha}); err != nil {
		t.Fatalf("UpdateIdentity: %v", err)
	}
	if _, err := svc.Login(context.Background(), "301", "nova-senha"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestAuthService_UpdateIdentity_Errors(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	a, _ := svc.CreateIdentity(context.Background(), createInput("400"))
	_, _ = svc.CreateIdentity(context.Background(), createInput("401"))

	taken := "401"
	if _, err := svc.UpdateIdentity(context.Background(), a.ID, ports.UpdateMilitarInput{Matricula: &taken}); !errors.Is(err, domain.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}

	bad := "general"
	if _, err := svc.UpdateIdentity(context.Background(), a.ID, ports.UpdateMilitarInput{PerfilAcesso: &bad}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	if _, err := svc.UpdateIdentity(context.Background(), "missing", ports.UpdateMilitarInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_DeleteIdentity(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	m, _ := svc.CreateIdentity(context.Background(), createInput("500"))

	if err := svc.DeleteIdentity(context.Background(), m.ID); err != nil {
		t.Fatalf("DeleteIdentity: %v", err)
	}
	if _, err := svc.GetIdentity(context.Background(), m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteIdentity(context.Background(), m.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestAuthService_PasswordReset_RoundTrip(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	in := createInput("12345")
	m, _ := svc.CreateIdentity(context.Background(), in)

	id, err := svc.RequestPasswordReset(context.Background(), "12345", in.CPF)
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if id != m.ID {
		t.Fatalf("expected id %s, got %s", m.ID, id)
	}

	if err := svc.ResetPassword(context.Background(), id, "brand-new"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), "12345", "brand-new"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
	if _, err := svc.Login(context.Background(), "12345", "correct"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("old password must fail, got %v", err)
	}
}

func TestAuthService_RequestPasswordReset_NoMatch(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo)
	_, _ = svc.CreateIdentity(context.Background(), createInput("12345"))

	if _, err := svc.RequestPasswordReset(context.Background(), "12345", "999.999.999-99"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAuthService_ResetPassword_RequiresOpenTicket(t *testing.T) {
	repo := newStubMilitarRepo()
	tickets := &stubResetTickets{}
	svc, _ := newTestAuthService(t, repo, WithResetTickets(tickets))
	in := createInput("600")
	m, _ := svc.CreateIdentity(context.Background(), in)

	if err := svc.ResetPassword(context.Background(), m.ID, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound without a request, got %v", err)
	}

	id, err := svc.RequestPasswordReset(context.Background(), "600", in.CPF)
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), id, "x"); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), id, "y"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("ticket must be single use, got %v", err)
	}
}

func TestAuthService_ResetPassword_RejectedPasswordKeepsTicket(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo, WithResetTickets(&stubResetTickets{}))
	in := createInput("601")
	if _, err := svc.CreateIdentity(context.Background(), in); err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}

	id, err := svc.RequestPasswordReset(context.Background(), "601", in.CPF)
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}

	// 72 runes but 144 bytes, past the bcrypt input limit.
	if err := svc.ResetPassword(context.Background(), id, strings.Repeat("é", 72)); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := svc.ResetPassword(context.Background(), id, "valid-pass"); err != nil {
		t.Fatalf("retry after rejected password: %v", err)
	}
	if _, err := svc.Login(context.Background(), "601", "valid-pass"); err != nil {
		t.Fatalf("login with new password: %v", err)
	}
}

func TestAuthService_ResetPassword_StoreFailureKeepsTicket(t *testing.T) {
	repo := newStubMilitarRepo()
	svc, _ := newTestAuthService(t, repo, WithResetTickets(&stubResetTickets{}))
	in := createInput("602")
	if _, err := svc.CreateIdentity(context.Background(), in); err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	id, err := svc.RequestPasswordReset(context.Background(), "602", in.CPF)
	if err != nil {
		t.Fatalf("RequestPasswordReset: %v", err)
	}

	down := errors.New("postgres down")
	repo.err = down
	if err := svc.ResetPassword(context.Background(), id, "valid-pass"); !errors.Is(err, down) {
		t.Fatalf("expected store error, got %v", err)
	}

	repo.err = nil
	if err := svc.ResetPassword(context.Background(), id, "valid-pass"); err != nil {
		t.Fatalf("retry after store failure: %v", err)
	}
}
