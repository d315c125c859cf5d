package sql_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/compiler/gen/sql"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/graph"
	"github.com/syssam/ddlgen/schema"
	"github.com/syssam/ddlgen/schema/field"
)

const postgresHeader = `create or replace function generate_uuid() returns uuid language plpgsql parallel safe as $$
declare
   -- The current UNIX timestamp in milliseconds
   unix_time_ms CONSTANT bytea NOT NULL DEFAULT substring(int8send((extract(epoch FROM clock_timestamp()) * 1000)::bigint) from 3);

   -- The buffer used to create the UUID, starting with the UNIX timestamp and followed by random bytes
   buffer bytea not null default unix_time_ms || gen_random_bytes(10);
begin
   -- Set most significant 4 bits of 7th byte to 7 (for UUID v7), keeping the last 4 bits unchanged
   buffer = set_byte(buffer, 6, (b'0111' || get_byte(buffer, 6)::bit(4))::bit(8)::int);

   -- Set most significant 2 bits of 9th byte to 2 (the UUID variant specified in RFC 4122), keeping the last 6 bits unchanged
   buffer = set_byte(buffer, 8, (b'10' || get_byte(buffer, 8)::bit(6))::bit(8)::int);

   return encode(buffer, 'hex');
end
$$;

do $createextensions$
begin
   if (select usesuper from pg_user where usename = CURRENT_USER) then
      create extension if not exists "uuid-ossp";
      create extension if not exists "citext";
      create extension if not exists "btree_gist";
   else
      raise notice 'User % is not a superuser, could not create uuid-ossp or citext extensions.', current_user;
   end if;
end;
$createextensions$;

`

func TestPostgresUsers(t *testing.T) {
	users := schema.NewTable("users").
		Columns(
			schema.NewColumn("id", field.TypeUUID).Required(),
			schema.NewColumn("email", field.TypeVarchar).Length(255).IgnoreCase().Required(),
			schema.NewColumn("name", field.TypeVarchar).Length(100),
			schema.NewColumn("active", field.TypeBoolean).Default("true"),
			schema.NewColumn("created", field.TypeDateTime).Required(),
		).
		PrimaryKey("id").
		Unique("email").
		Index("name").
		MustBuild()
	m := schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("public").MustAddTable(users))

	out := generate(t, m, dialect.Postgres)
	assert.Equal(t, postgresHeader+`/* public.users */
create table public.users
(
   id uuid default generate_uuid() not null,
   email citext not null,
   name text,
   active boolean default true,
   created timestamp not null,
   constraint pk_users primary key (id),
   constraint uk_users1 unique (email)
);

create index ix_users1 on public.users (name);

`, out)
}

func TestPostgresRelations(t *testing.T) {
	accounts := schema.NewTable("accounts").
		Schema("billing").
		Columns(
			schema.NewColumn("id", field.TypeLongSequence).Required(),
			schema.NewColumn("status", field.TypeEnum).Enum("AccountStatus").Required(),
		).
		PrimaryKey("id").
		MustBuild()
	invoices := schema.NewTable("invoices").
		Schema("billing").
		Columns(
			schema.NewColumn("id", field.TypeLongSequence).Required(),
			schema.NewColumn("account_id", field.TypeLong).Required(),
			schema.NewColumn("amount", field.TypeDecimal).Length(12).Scale(2).Min(0).Required(),
		).
		PrimaryKey("id").
		Relation("account_id", "accounts", "id", schema.RelationCascade).
		MustBuild()
	billing := schema.NewSchema("billing").MustAddTable(accounts, invoices)
	require.NoError(t, billing.AddEnumType(schema.NewEnumType("AccountStatus",
		schema.NewEnumValue("Open", "OPEN"),
		schema.NewEnumValue("Frozen", "FROZEN"),
		schema.NewEnumValue("Debtor", `O'DEBT\`))))
	m := schema.NewDatabaseModel().MustAddSchema(billing)
	require.NoError(t, graph.BuildReverseRelations(m))

	out := generate(t, m, dialect.Postgres)
	out = strings.TrimPrefix(out, postgresHeader)
	assert.Equal(t, `/* billing.accounts */
create table billing.accounts
(
   id bigserial not null,
   status varchar(7) not null,
   constraint pk_accounts primary key (id),
   constraint `+gen.CheckConstraintName("accounts", "status")+` check(status in ('OPEN', 'FROZEN',  E'O''DEBT\\'))
);

/* billing.invoices */
create table billing.invoices
(
   id bigserial not null,
   account_id bigint not null,
   amount decimal(12,2) not null,
   constraint pk_invoices primary key (id),
   constraint `+gen.CheckConstraintName("invoices", "amount")+` check(amount >= 0)
);

alter table billing.invoices add constraint fk_invoices1 foreign key (account_id) references billing.accounts (id) on delete cascade;

`, out)
}

func TestPostgresQuoteLiteral(t *testing.T) {
	p := sql.Postgres{}
	assert.Equal(t, "'plain'", p.QuoteLiteral("plain"))
	assert.Equal(t, "'it''s'", p.QuoteLiteral("it's"))
	assert.Equal(t, `E'C:\\tmp'`, p.QuoteLiteral(`C:\tmp`))
}

func TestPostgresEnumCheckWithBackslash(t *testing.T) {
	tbl := schema.NewTable("paths").
		Columns(schema.NewColumn("kind", field.TypeEnum).Enum("PathKind")).
		MustBuild()
	sc := schema.NewSchema("")
	require.NoError(t, sc.AddEnumType(schema.NewEnumType("PathKind",
		schema.NewEnumValue("Unix", "/"),
		schema.NewEnumValue("Windows", `\`),
	)))
	sc.MustAddTable(tbl)
	m := schema.NewDatabaseModel().MustAddSchema(sc)

	out := generate(t, m, dialect.Postgres)
	assert.Contains(t, out, `check(kind in ('/', E'\\'))`)
	assert.NotContains(t, out, "  E'")
}

func TestOutputModesSkipHeader(t *testing.T) {
	tbl := schema.NewTable("events").
		Columns(schema.NewColumn("at", field.TypeDateTime)).
		Index("at").
		Trigger(schema.TriggerUpdate, dialect.Postgres, "create trigger events_touch before update on events for each row execute function touch()").
		MustBuild()
	m := schema.NewDatabaseModel().MustAddSchema(schema.NewSchema("").MustAddTable(tbl))

	idx := generate(t, m, dialect.Postgres, gen.WithOutputMode(gen.OutputIndexesOnly))
	assert.Equal(t, "create index ix_events1 on events (at);\n\n", idx)

	trg := generate(t, m, dialect.Postgres, gen.WithOutputMode(gen.OutputTriggersOnly))
	assert.Equal(t, "create trigger events_touch before update on events for each row execute function touch();\n\n", trg)
}
