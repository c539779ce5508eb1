// Package pdf renders the printable invoice document.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"go.uber.org/fx"

	entreprisedomain "github.com/hscdigital/douanapp/internal/entreprise/domain"
	facturedomain "github.com/hscdigital/douanapp/internal/facture/domain"
	"github.com/hscdigital/douanapp/internal/format"
)

type Provider interface {
	// FactureDocument renders the invoice: letterhead, client and vehicle
	// blocks, totals, the installment schedule when one exists, footer.
	FactureDocument(ctx context.Context, f facturedomain.Facture, e entreprisedomain.EntrepriseInfo) (io.Reader, error)
}

type provider struct{}

func New() Provider {
	return &provider{}
}

func (p *provider) FactureDocument(ctx context.Context, f facturedomain.Facture, e entreprisedomain.EntrepriseInfo) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} / {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	// Letterhead
	m.AddRow(26,
		col.New(8).Add(
			text.New(e.Nom, props.Text{Size: 14, Style: fontstyle.Bold}),
			text.New(e.Adresse, props.Text{Top: 7, Size: 9}),
			text.New(strings.TrimSpace(e.Telephone+"  "+e.Email), props.Text{Top: 12, Size: 9}),
		),
		col.New(4).Add(
			text.New("FACTURE", props.Text{Size: 18, Style: fontstyle.Bold, Align: align.Right}),
			text.New("N° "+f.ID, props.Text{Top: 9, Size: 9, Align: align.Right}),
			text.New("Date: "+format.DateCourt(f.DateFacture), props.Text{Top: 13, Size: 9, Align: align.Right}),
		),
	)
	m.AddRow(3, line.NewCol(12))

	// Client and vehicle blocks
	clientName := strings.TrimSpace(f.PrenomClient + " " + f.NomClient)
	m.AddRow(32,
		col.New(6).Add(
			text.New("Client", props.Text{Style: fontstyle.Bold, Size: 10}),
			text.New(clientName, props.Text{Top: 6, Size: 9}),
			text.New(f.Telephone, props.Text{Top: 10, Size: 9}),
			text.New(f.Adresse, props.Text{Top: 14, Size: 9}),
			text.New(f.Email, props.Text{Top: 18, Size: 9}),
		),
		col.New(6).Add(
			text.New("Véhicule", props.Text{Style: fontstyle.Bold, Size: 10}),
			text.New("Référence: "+f.ReferenceVehicule, props.Text{Top: 6, Size: 9}),
			text.New("Type: "+f.TypeVehicule, props.Text{Top: 10, Size: 9}),
			text.New("VIN: "+f.VIN, props.Text{Top: 14, Size: 9}),
			text.New("Destination: "+f.PaysDestination, props.Text{Top: 18, Size: 9}),
		),
	)

	// Totals
	m.AddRow(8,
		text.NewCol(8, "Désignation", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Montant", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(2, line.NewCol(12))
	m.AddRow(8,
		text.NewCol(8, "Prix de vente TTC", props.Text{Size: 9}),
		text.NewCol(4, format.Montant(f.PrixTotalTTC), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(8, "Montant payé", props.Text{Size: 9}),
		text.NewCol(4, format.Montant(f.MontantPaye), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(8, "Reste à payer", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, format.Montant(f.MontantRestant), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		text.NewCol(8, "Statut", props.Text{Size: 9}),
		text.NewCol(4, f.Statut.Label(), props.Text{Size: 9, Align: align.Right}),
	)

	// Installment schedule
	if len(f.Tranches) > 0 {
		m.AddRow(10,
			text.NewCol(12, "Échéancier", props.Text{Size: 11, Style: fontstyle.Bold, Top: 3}),
		)
		m.AddRow(7,
			text.NewCol(2, "N°", props.Text{Style: fontstyle.Bold, Size: 9}),
			text.NewCol(3, "Montant", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(3, "Échéance", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, "Paiement", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
			text.NewCol(2, "Statut", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		)
		m.AddRow(2, line.NewCol(12))
		for _, t := range f.Tranches {
			datePaiement := "-"
			if t.DatePaiement != nil {
				datePaiement = format.DateCourt(*t.DatePaiement)
			}
			m.AddRow(7,
				text.NewCol(2, fmt.Sprintf("%d", t.NumeroTranche), props.Text{Size: 9}),
				text.NewCol(3, format.Montant(t.Montant), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(3, format.DateCourt(t.DateEcheance), props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, datePaiement, props.Text{Size: 9, Align: align.Right}),
				text.NewCol(2, t.Statut.Label(), props.Text{Size: 9, Align: align.Right}),
			)
		}
	}

	// Footer
	m.AddRow(16,
		text.NewCol(12, "Merci de votre confiance.", props.Text{Size: 9, Top: 8, Align: align.Center}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(doc.GetBytes()), nil
}

var Module = fx.Module("providers.pdf",
	fx.Provide(New),
)
