package release

import (
	"slices"

	"github.com/relkit/relkit/internal/changelog"
	"github.com/relkit/relkit/internal/config"
	relerr "github.com/relkit/relkit/internal/errors"
)

// ProductionChangelog extracts the cleaned section for version from the
// developer changelog and prepends it to the production changelog document.
//
// Running the flow twice for the same version without new changes fails with
// a NoNewChanges classification: the freshly computed section would be
// identical to the production document's first section.
func ProductionChangelog(cfg *config.Configuration, version string) (*changelog.ProdSection, error) {
	doc, err := changelog.Load(cfg.Changelog)
	if err != nil {
		return nil, err
	}

	section, err := doc.ExtractProduction(version)
	if err != nil {
		return nil, err
	}

	prodDoc, err := changelog.LoadOrEmpty(cfg.ProdChangelog)
	if err != nil {
		return nil, err
	}

	rendered := section.Render()
	if slices.Equal(prodDoc.FirstSection(), rendered) {
		return nil, relerr.Newf(relerr.NoNewChanges, "no new changes for version %s", version)
	}

	prodDoc.Lines = append(rendered, prodDoc.Lines...)
	if err := prodDoc.Write(); err != nil {
		return nil, err
	}

	return section, nil
}
